package handlers

import "net/http"

// APIVersion версия API в ответе /api/status.
const APIVersion = "0.1.0"

// Root приветствие бэкенда.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Corexus Backend!"})
}

// Status проверка работоспособности.
func Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "operational", "version": APIVersion})
}

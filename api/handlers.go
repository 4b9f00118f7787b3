package api

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/zagvozdeen/irys-gallery/internal/gallery"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (a *Application) health(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Irys Gallery API is running",
	})
}

func (a *Application) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.store.Ping(ctx); err != nil {
		a.logger.Warn("Database not ready", "err", err, "request_id", requestIDFrom(r.Context()))
		a.writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (a *Application) connectWallet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WalletAddress string `json:"wallet_address"`
	}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(body.WalletAddress) == "" {
		a.writeError(w, http.StatusBadRequest, "Wallet address is required")
		return
	}
	user, created, err := a.store.ConnectWallet(r.Context(), body.WalletAddress)
	if err != nil {
		if errors.Is(err, gallery.ErrWalletRequired) {
			a.writeError(w, http.StatusBadRequest, "Wallet address is required")
			return
		}
		a.internalError(w, r, "Failed to connect wallet", err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
		a.logger.Info("User created", "user_id", user.ID, "request_id", requestIDFrom(r.Context()))
	}
	a.writeJSON(w, status, map[string]gallery.User{"user": user})
}

func (a *Application) listArtworks(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page, err := positiveInt(values.Get("page"), gallery.DefaultPage)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	limit, err := positiveInt(values.Get("limit"), gallery.DefaultLimit)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}
	q := gallery.ArtworkQuery{Page: page, Limit: limit, Search: values.Get("search")}.Normalize()

	artworks, err := a.store.ListArtworks(r.Context(), q)
	if err != nil {
		a.internalError(w, r, "Failed to list artworks", err)
		return
	}
	if artworks == nil {
		artworks = []gallery.Artwork{}
	}
	if a.renderer != nil {
		for i := range artworks {
			if d := artworks[i].Description; d != nil {
				artworks[i].DescriptionHTML = a.renderer.Markdown(*d)
			}
		}
	}
	a.writeJSON(w, http.StatusOK, map[string][]gallery.Artwork{"artworks": artworks})
}

func (a *Application) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	a.logger.Error(msg, "err", err, "request_id", requestIDFrom(r.Context()))
	a.writeError(w, http.StatusInternalServerError, "internal server error")
}

func positiveInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

func (a *Application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("Failed to write response", "err", err, "status", status)
	}
}

func (a *Application) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, errorResponse{Error: msg})
}

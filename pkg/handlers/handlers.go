package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/eknkc/pug"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
	"asset-browser/pkg/services"
)

// IndexHandler renders the gallery index page grouped by category.
func IndexHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Index")

	assets, err := services.GetAssets()
	if err != nil {
		http.Error(w, "Asset library unavailable", http.StatusServiceUnavailable)
		log.Printf("Asset load error: %v", err)
		return
	}

	template, err := pug.CompileFile("./views/index.pug", pug.Options{})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Template error: %v", err)
		return
	}

	err = template.Execute(w, models.Index{
		Title:      "Asset Browser",
		Categories: manifest.GroupByCategory(assets),
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Template execution error: %v", err)
	}
}

// ManifestHandler serves the manifest document as JSON.
func ManifestHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Manifest")

	m, err := services.GetManifest()
	if err != nil {
		http.Error(w, "Manifest unavailable", http.StatusServiceUnavailable)
		log.Printf("Manifest load error: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		log.Printf("Manifest encode error: %v", err)
	}
}

// FeedHandler serves the flattened asset list as JSON.
func FeedHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Feed")

	assets, err := services.GetAssets()
	if err != nil {
		http.Error(w, "Asset library unavailable", http.StatusServiceUnavailable)
		log.Printf("Asset load error: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(assets); err != nil {
		log.Printf("Feed encode error: %v", err)
	}
}

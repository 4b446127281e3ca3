package routes

import (
	"encoding/json"
	"net/http"

	"github.com/imovead/imovead/internal/app"
	"github.com/imovead/imovead/internal/handler"
	"github.com/imovead/imovead/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	property := handler.NewPropertyHandler(app.PropertyService)
	public := handler.NewPublicHandler(app.PropertyService)
	upload := handler.NewUploadHandler(app.UploadService)

	// Signed-URL issuance hits the storage provider; rate limit it.
	rateLimiter := middleware.RateLimitSignedURLs()

	// RPC procedures, dispatched by name from the single endpoint.
	procedures := map[string]http.HandlerFunc{
		"property.create":      property.Create,
		"property.list":        property.List,
		"property.show":        property.Show,
		"property.update":      property.Update,
		"property.delete":      property.Delete,
		"property.addPhotos":   property.AddPhotos,
		"property.removePhoto": property.RemovePhoto,
		"property.setActive":   property.SetActive,
		"s3.createSignedUrls":  rateLimiter(upload.CreateSignedURLs),
	}

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Advertisement page data, by slug only (no ownership filter)
	mux.HandleFunc("GET /api/listings/{slug}", public.Show)

	// ============================================================================
	// RPC ENDPOINT (authenticated)
	// ============================================================================

	mux.HandleFunc("POST /api/rpc/{procedure}", middleware.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		proc, ok := procedures[r.PathValue("procedure")]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"kind":    "NOT_FOUND",
					"message": "unknown procedure",
				},
			})
			return
		}
		proc(w, r)
	}))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Auth(app.AuthService),
	)
}

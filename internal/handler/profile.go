package handler

import (
	"net/http"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/profile"
)

// HandleGetProfileView returns the view model for /on/{network}/{handle}
// @Summary Profile page view
// @Description Looks up the handle, resolves its account and gathers lifecycle state and tips. Claimed accounts carry a redirect instead.
// @Tags profile
// @Produce json
// @Param network path string true "github, twitter or bitbucket"
// @Param handle path string true "Handle on the network"
// @Param viewer_id query string false "Viewer account ID"
// @Success 200 {object} profile.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/on/{network}/{handle} [get]
func HandleGetProfileView(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, ok := GetPathParam(r, w, ParamNetwork)
		if !ok {
			return
		}
		handle, ok := GetPathParam(r, w, ParamHandle)
		if !ok {
			return
		}
		network, err := domain.ParseNetwork(tag)
		if err != nil {
			respondServiceError(w, r, "Profile view", err)
			return
		}

		view, err := svc.View(r.Context(), network, handle, GetOptionalQueryParam(r, QueryViewerID, ""))
		if err != nil {
			respondServiceError(w, r, "Profile view", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

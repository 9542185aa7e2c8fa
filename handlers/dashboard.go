package handlers

import (
	"net/http"

	"github.com/VivekbirN/SDP-project/insight"
	"github.com/VivekbirN/SDP-project/models"
)

// GetDashboard retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Bill counts, paid and unpaid totals, and the five most recently recorded bills.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=insight.Dashboard}
// @Router       /dashboard [get]
// @Security     BasicAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	bills, err := Store.ListAll(r.Context(), models.BillFilter{})
	if err != nil {
		writeInternal(w, r, "failed to retrieve dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, insight.ComputeDashboard(bills))
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

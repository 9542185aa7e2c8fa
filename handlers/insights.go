package handlers

import (
	"errors"
	"net/http"

	"github.com/VivekbirN/SDP-project/charts"
	"github.com/VivekbirN/SDP-project/insight"
	"github.com/VivekbirN/SDP-project/models"
)

// GetTrends returns consumption and spend per period
// @Summary      Get trends
// @Description  Bills grouped by (year, month) with summed units and amount, in chronological order.
// @Tags         insights
// @Produce      json
// @Param        utilityType  query     string  false  "Filter by utility (electricity, water, gas)"
// @Success      200          {object}  Response{data=[]insight.Trend}
// @Failure      400          {object}  Response{error=string}
// @Router       /trends [get]
// @Security     BasicAuth
func GetTrends(w http.ResponseWriter, r *http.Request) {
	filter, err := utilityFilter(r)
	if err != nil {
		writeFilterError(w, err)
		return
	}
	bills, err := Store.ListAll(r.Context(), filter)
	if err != nil {
		writeInternal(w, r, "failed to retrieve trends", err)
		return
	}
	writeJSON(w, http.StatusOK, insight.ComputeTrends(bills))
}

// GetTrendChart renders the trends as a PNG line chart
// @Summary      Get trend chart
// @Description  PNG line chart of units consumed and amount per period.
// @Tags         insights
// @Produce      png
// @Param        utilityType  query     string  false  "Filter by utility (electricity, water, gas)"
// @Success      200          {file}    binary
// @Failure      400          {object}  Response{error=string}
// @Failure      404          {object}  Response{error=string}
// @Router       /trends/chart [get]
// @Security     BasicAuth
func GetTrendChart(w http.ResponseWriter, r *http.Request) {
	filter, err := utilityFilter(r)
	if err != nil {
		writeFilterError(w, err)
		return
	}
	bills, err := Store.ListAll(r.Context(), filter)
	if err != nil {
		writeInternal(w, r, "failed to retrieve trends", err)
		return
	}

	title := "Utility usage"
	if filter.UtilityType != "" {
		title = "Utility usage: " + filter.UtilityType
	}
	png, err := charts.NewTrendChart().RenderPNG(title, insight.ComputeTrends(bills))
	if errors.Is(err, charts.ErrNoTrends) {
		writeError(w, http.StatusNotFound, "no bills to chart")
		return
	}
	if err != nil {
		writeInternal(w, r, "failed to render trend chart", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// GetAnalytics returns averages, alerts and a per-utility breakdown
// @Summary      Get analytics
// @Description  Average consumption and amount, high-consumption alerts and utility breakdown. The default threshold is 1.5x the average of the filtered set.
// @Tags         insights
// @Produce      json
// @Param        utilityType  query     string  false  "Filter by utility (electricity, water, gas)"
// @Param        threshold    query     number  false  "Explicit high-consumption threshold in units"
// @Success      200          {object}  Response{data=insight.Analytics}
// @Failure      400          {object}  Response{error=string}
// @Router       /analytics [get]
// @Security     BasicAuth
func GetAnalytics(w http.ResponseWriter, r *http.Request) {
	filter, err := utilityFilter(r)
	if err != nil {
		writeFilterError(w, err)
		return
	}
	bills, err := Store.ListAll(r.Context(), filter)
	if err != nil {
		writeInternal(w, r, "failed to retrieve analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, insight.ComputeAnalytics(bills, r.URL.Query().Get("threshold")))
}

// GetCostSummary returns totals per utility over all bills
// @Summary      Get cost summary
// @Description  Totals and averages for electricity, water and gas over every bill.
// @Tags         insights
// @Produce      json
// @Success      200  {object}  Response{data=insight.CostSummary}
// @Router       /cost-summary [get]
// @Security     BasicAuth
func GetCostSummary(w http.ResponseWriter, r *http.Request) {
	bills, err := Store.ListAll(r.Context(), models.BillFilter{})
	if err != nil {
		writeInternal(w, r, "failed to retrieve cost summary", err)
		return
	}
	writeJSON(w, http.StatusOK, insight.ComputeCostSummary(bills))
}

// GetMonthlySummary returns per-utility totals of one month
// @Summary      Get monthly summary
// @Description  Per-utility totals and averages for the bills of one month.
// @Tags         insights
// @Produce      json
// @Param        month  query     string  true  "Month name, e.g. March"
// @Param        year   query     int     true  "Year"
// @Success      200    {object}  Response{data=map[string]insight.UtilityTotals}
// @Failure      400    {object}  Response{error=string}
// @Router       /summary/monthly [get]
// @Security     BasicAuth
func GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, ok := models.CanonicalMonth(r.URL.Query().Get("month"))
	if !ok {
		writeError(w, http.StatusBadRequest, "month must be a calendar month name (January..December)")
		return
	}
	year, ok := yearParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "year must be between 2000 and 2100")
		return
	}
	bills, err := Store.ListAll(r.Context(), models.BillFilter{})
	if err != nil {
		writeInternal(w, r, "failed to retrieve monthly summary", err)
		return
	}
	writeJSON(w, http.StatusOK, insight.MonthlySummary(bills, month, year))
}

// GetYearlySummary returns per-month totals of one year
// @Summary      Get yearly summary
// @Description  Units, amount and bill count per month of a year, in calendar order.
// @Tags         insights
// @Produce      json
// @Param        year  query     int  true  "Year"
// @Success      200   {object}  Response{data=[]insight.MonthTotal}
// @Failure      400   {object}  Response{error=string}
// @Router       /summary/yearly [get]
// @Security     BasicAuth
func GetYearlySummary(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "year must be between 2000 and 2100")
		return
	}
	bills, err := Store.ListAll(r.Context(), models.BillFilter{})
	if err != nil {
		writeInternal(w, r, "failed to retrieve yearly summary", err)
		return
	}
	writeJSON(w, http.StatusOK, insight.YearlySummary(bills, year))
}

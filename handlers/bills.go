package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/go-chi/chi/v5"
)

// sortForListing orders bills by year descending, then calendar month.
func sortForListing(bills []models.Bill) {
	sort.SliceStable(bills, func(i, j int) bool {
		if bills[i].Year != bills[j].Year {
			return bills[i].Year > bills[j].Year
		}
		mi, _ := models.MonthIndex(bills[i].Month)
		mj, _ := models.MonthIndex(bills[j].Month)
		return mi < mj
	})
}

// ListBills lists all bills
// @Summary      List bills
// @Description  Get all recorded utility bills, newest year first and calendar month order within a year.
// @Tags         bills
// @Produce      json
// @Param        utilityType  query     string  false  "Filter by utility (electricity, water, gas)"
// @Success      200          {object}  Response{data=[]models.Bill}
// @Failure      400          {object}  Response{error=string}
// @Router       /bills [get]
// @Security     BasicAuth
func ListBills(w http.ResponseWriter, r *http.Request) {
	filter, err := utilityFilter(r)
	if err != nil {
		writeFilterError(w, err)
		return
	}

	bills, err := Store.ListAll(r.Context(), filter)
	if err != nil {
		writeInternal(w, r, "failed to retrieve bills", err)
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	sortForListing(bills)
	writeJSON(w, http.StatusOK, bills)
}

// GetBill retrieves a single bill by ID
// @Summary      Get bill
// @Description  Get a specific utility bill.
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  Response{data=models.Bill}
// @Failure      404  {object}  Response{error=string}
// @Router       /bills/{id} [get]
// @Security     BasicAuth
func GetBill(w http.ResponseWriter, r *http.Request) {
	b, err := Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// CreateBill creates a new bill
// @Summary      Create bill
// @Description  Record a utility bill. costPerUnit is derived from amount and unitsConsumed.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        bill  body      models.BillInput  true  "Bill contents"
// @Success      201   {object}  Response{data=models.Bill}
// @Failure      400   {object}  Response{error=string}
// @Router       /bills [post]
// @Security     BasicAuth
func CreateBill(w http.ResponseWriter, r *http.Request) {
	var input models.BillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	b, err := Store.Create(r.Context(), input)
	if err != nil {
		writeInternal(w, r, "failed to save bill", err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// UpdateBill updates an existing bill
// @Summary      Update bill
// @Description  Replace the month, year, utility, units and amount of a bill and recompute costPerUnit.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Bill ID"
// @Param        bill  body      models.BillInput  true  "Updated bill contents"
// @Success      200   {object}  Response{data=models.Bill}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Router       /bills/{id} [put]
// @Security     BasicAuth
func UpdateBill(w http.ResponseWriter, r *http.Request) {
	var input models.BillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	b, err := Store.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// DeleteBill deletes a bill
// @Summary      Delete bill
// @Description  Remove a bill.
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /bills/{id} [delete]
// @Security     BasicAuth
func DeleteBill(w http.ResponseWriter, r *http.Request) {
	if err := Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// PayBill marks a bill as paid
// @Summary      Mark bill paid
// @Description  Mark a bill as paid. paymentDate defaults to now.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id       path      string               true   "Bill ID"
// @Param        payment  body      models.PaymentInput  false  "Payment details"
// @Success      200      {object}  Response{data=models.Bill}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /bills/{id}/pay [post]
// @Security     BasicAuth
func PayBill(w http.ResponseWriter, r *http.Request) {
	var input models.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	paidAt := Now()
	if input.PaymentDate != nil {
		paidAt = *input.PaymentDate
	}

	b, err := Store.MarkPaid(r.Context(), chi.URLParam(r, "id"), paidAt)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/VivekbirN/SDP-project/db"
	"github.com/VivekbirN/SDP-project/models"
)

// utilityFilter reads the optional utilityType query parameter.
func utilityFilter(r *http.Request) (models.BillFilter, error) {
	utility, err := models.ParseUtilityType(r.URL.Query().Get("utilityType"))
	if err != nil {
		return models.BillFilter{}, err
	}
	return models.BillFilter{UtilityType: utility}, nil
}

// writeFilterError answers 400 for an invalid utility type.
func writeFilterError(w http.ResponseWriter, err error) {
	var invalid *models.InvalidUtilityTypeError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, "Invalid utility type. Must be electricity, water, or gas")
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// writeStoreError answers 404 for a missing bill and 500 otherwise.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "bill not found")
		return
	}
	writeInternal(w, r, "bill store failure", err)
}

// yearParam parses a required year query parameter.
func yearParam(r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, false
	}
	return year, true
}

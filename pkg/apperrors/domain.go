package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined variables for domain errors of the task, user
// and payment modules.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// TaskNotFound - the task id does not exist (404).
func TaskNotFound(id uint) *AppError {
	return New(CodeNotFound, "task", fmt.Sprintf("Task %d not found", id), http.StatusNotFound)
}

// TransactionNotFound - the tran_id from a callback does not exist (404).
func TransactionNotFound(id uint) *AppError {
	return New(CodeNotFound, "payment", fmt.Sprintf("Transaction %d not found", id), http.StatusNotFound)
}

// TransactionAlreadyResolved - the transaction already left the pending
// state; repeated gateway callbacks must not overwrite the result (409).
func TransactionAlreadyResolved(id uint, status string) *AppError {
	return New(
		CodeConflict,
		"payment",
		fmt.Sprintf("Transaction %d is already %s", id, status),
		http.StatusConflict,
	)
}

// ErrPlanNotConfigured - the reference Pro plan row is missing. The
// initialize flow treats this as a client-visible 400, matching the
// "plan schedule is not set" contract.
var ErrPlanNotConfigured = New(
	CodeInvalidOperation,
	"billing",
	"This plan schedule is not set",
	http.StatusBadRequest,
)

// ErrPlanNotFound - the plan lookup endpoint found no matching row.
var ErrPlanNotFound = New(
	CodeNotFound,
	"billing",
	"Plan not found in the system",
	http.StatusNotFound,
)

// EmailAlreadyExists routes uniqueness violations through the same
// validation channel as input-shape failures.
func EmailAlreadyExists(email string) *AppError {
	return ValidationError(map[string]string{
		"email": fmt.Sprintf("The email %q is already taken", email),
	})
}

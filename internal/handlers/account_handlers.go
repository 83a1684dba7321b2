package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

type AccountHandler struct {
	accounts *services.AccountService
}

func NewAccountHandler(accounts *services.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	params, page, ok := listParams(c)
	if !ok {
		return
	}
	accounts, err := h.accounts.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Accounts not found")
		return
	}
	sendList(c, accounts, page)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accounts.Get(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		handleServiceError(c, err, "Account not found")
		return
	}
	sendSuccess(c, http.StatusOK, account)
}

// RefreshAccount pulls the account's onboarding state from the processor.
func (h *AccountHandler) RefreshAccount(c *gin.Context) {
	account, err := h.accounts.RefreshFromProcessor(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		handleServiceError(c, err, "Account not found")
		return
	}
	sendSuccess(c, http.StatusOK, account)
}

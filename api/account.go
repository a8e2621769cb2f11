package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/vitals-api/schema"
	"github.com/bitmark-inc/vitals-api/store"
)

// accountRegister is the API for register a new account. A patient gets an
// empty profile in the record store right away.
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	accountNumber := c.GetString("requester")

	var params struct {
		Role          schema.Role            `json:"role"`
		InstitutionID string                 `json:"institution_id"`
		Metadata      map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !params.Role.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidRole)
		return
	}

	a, err := s.store.CreateAccount(accountNumber, params.Role, params.InstitutionID, params.Metadata)
	switch {
	case errors.Is(err, store.ErrMissingInstitution):
		abortWithEncoding(c, http.StatusBadRequest, errorMissingInstitution)
		return
	case errors.Is(err, store.ErrInvalidRole):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidRole)
		return
	case err != nil:
		logger.WithError(err).Warn("create account")
		abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		return
	}

	if a.Role == schema.RolePatient {
		if err := s.mongoStore.CreateProfile(c.Request.Context(), a.AccountNumber, a.Profile.PatientID); err != nil {
			logger.WithError(err).Error("create patient profile")
			if err := s.store.DeleteAccount(a.AccountNumber); err != nil {
				logger.WithError(err).Error("roll back account")
			}
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	account, ok := accountFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdateMetadata is the API to update metadata for a user
func (s *Server) accountUpdateMetadata(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Metadata map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.UpdateAccountMetadata(accountNumber, params.Metadata); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountDelete is the API to remove an account from our service. Lab
// reports of a patient are kept; only the profile goes away.
func (s *Server) accountDelete(c *gin.Context) {
	account, ok := accountFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if account.Role == schema.RolePatient {
		if err := s.mongoStore.DeleteProfile(c.Request.Context(), account.Profile.PatientID); err != nil {
			abortWithStoreError(c, err)
			return
		}
	}

	if err := s.store.DeleteAccount(account.AccountNumber); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

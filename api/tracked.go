package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getTrackedMetrics(c *gin.Context) {
	names, err := s.trend.TrackedMetrics(c.Request.Context(), c.Param("patientID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": names,
	})
}

func (s *Server) addTrackedMetric(c *gin.Context) {
	var params struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.trend.AddTracked(c.Request.Context(), c.Param("patientID"), params.Name); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) replaceTrackedMetrics(c *gin.Context) {
	var params struct {
		Names []string `json:"names"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if _, err := s.trend.ReplaceTracked(c.Request.Context(), c.Param("patientID"), params.Names); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) removeTrackedMetric(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.trend.RemoveTracked(c.Request.Context(), c.Param("patientID"), name); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) grantInstitution(c *gin.Context) {
	var params struct {
		InstitutionID string `json:"institution_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.GrantInstitution(c.Request.Context(), c.Param("patientID"), params.InstitutionID); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) revokeInstitution(c *gin.Context) {
	if err := s.mongoStore.RevokeInstitution(c.Request.Context(), c.Param("patientID"), c.Param("institutionID")); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

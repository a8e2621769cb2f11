package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/vitals-api/consts"
)

// queryInt reads a positive integer query parameter, falling back to
// `fallback` when it is absent
func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw, exists := c.GetQuery(key)
	if !exists {
		return fallback, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// requestLanguage prefers the `lang` query parameter over Accept-Language
func requestLanguage(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return c.GetHeader("Accept-Language")
}

func (s *Server) getTimeSeries(c *gin.Context) {
	name := c.Query("name")
	days, ok := queryInt(c, "days", consts.DefaultLookbackDays)
	if name == "" || !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	observations, err := s.trend.TimeSeries(c.Request.Context(), c.Param("patientID"), name, days)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": observations,
	})
}

func (s *Server) getTrend(c *gin.Context) {
	name := c.Query("name")
	days, ok := queryInt(c, "days", consts.DefaultLookbackDays)
	if name == "" || !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result, err := s.trend.Trend(c.Request.Context(), c.Param("patientID"), name, days)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
	})
}

func (s *Server) getDashboard(c *gin.Context) {
	days, ok := queryInt(c, "days", consts.DefaultLookbackDays)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	view, err := s.trend.Dashboard(c.Request.Context(), c.Param("patientID"), days)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": view,
	})
}

func (s *Server) getAdvice(c *gin.Context) {
	limit, ok := queryInt(c, "limit", consts.DefaultAdviceLimit)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	advice, err := s.trend.Advice(c.Request.Context(), c.Param("patientID"), limit, requestLanguage(c))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": advice,
	})
}

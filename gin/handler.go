package gin

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/shopinsight"
	"github.com/gin-gonic/gin"
)

// brandSummary is the listing shape of a stored brand.
type brandSummary struct {
	ID    string  `json:"id"`
	URL   string  `json:"url"`
	About *string `json:"about"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Shopify Insights Fetcher"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleFetchInsights(c *gin.Context) {
	storeURL, ok := s.websiteURL(c)
	if !ok {
		return
	}

	si, err := s.Insights.BuildInsight(c.Request.Context(), storeURL)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, si)
}

func (s *Server) handleListBrands(c *gin.Context) {
	brands, err := s.Brands.FindBrands(c.Request.Context(), shopinsight.BrandFilter{})
	if err != nil {
		s.error(c, err)
		return
	}

	out := make([]brandSummary, 0, len(brands))
	for _, b := range brands {
		out = append(out, brandSummary{ID: b.ID, URL: b.URL, About: b.About})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCompetitors(c *gin.Context) {
	storeURL, ok := s.websiteURL(c)
	if !ok {
		return
	}

	limit := shopinsight.DefaultMaxCompetitors
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.error(c, shopinsight.Errorf(shopinsight.EINVALID, "max must be a positive integer"))
			return
		}
		limit = n
	}

	report, err := s.Insights.AnalyzeCompetitors(c.Request.Context(), storeURL, limit)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// websiteURL reads and validates the website_url query parameter, writing
// a 400 response when it is missing or malformed.
func (s *Server) websiteURL(c *gin.Context) (string, bool) {
	raw := c.Query("website_url")
	if raw == "" {
		s.error(c, shopinsight.Errorf(shopinsight.EINVALID, "website_url is required"))
		return "", false
	}
	if err := shopinsight.ValidateStoreURL(raw); err != nil {
		s.error(c, err)
		return "", false
	}
	return raw, true
}

// error writes err as a JSON response with a status matching its code.
func (s *Server) error(c *gin.Context, err error) {
	code := shopinsight.ErrorCode(err)
	status := errorStatusCodes[code]
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if code == shopinsight.EINTERNAL {
		s.logger().Error("request failed", "path", c.Request.URL.Path, "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": shopinsight.ErrorMessage(err)})
}

var errorStatusCodes = map[string]int{
	shopinsight.ECONFLICT: http.StatusConflict,
	shopinsight.EINVALID:  http.StatusBadRequest,
	shopinsight.ENOTFOUND: http.StatusNotFound,
	shopinsight.EINTERNAL: http.StatusInternalServerError,
}

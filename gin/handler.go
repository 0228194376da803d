package gin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fwojciec/shopinsight"
	"github.com/gin-gonic/gin"
)

// FetchInsightsRequest is the body of POST /fetch_insights/.
type FetchInsightsRequest struct {
	WebsiteURL string `json:"website_url"`
}

// Response is the envelope returned by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Message: "shopinsight API is running"})
}

func (s *Server) handleFetchInsights(c *gin.Context) {
	var req FetchInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, shopinsight.Errorf(shopinsight.EINVALID, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.WebsiteURL) == "" {
		s.writeError(c, shopinsight.Errorf(shopinsight.EINVALID, "website_url is required"))
		return
	}

	result, err := s.Scraper.Scrape(c.Request.Context(), req.WebsiteURL)
	if err != nil {
		if shopinsight.ErrorCode(err) == shopinsight.EUNAVAILABLE {
			err = shopinsight.Errorf(shopinsight.EINVALID, "Failed to scrape the provided URL.")
		}
		s.writeError(c, err)
		return
	}

	if err := s.BrandService.CreateBrand(c.Request.Context(), result.Profile); err != nil {
		// A profile the store rejects is a server-side failure here, not
		// bad input from the caller.
		if shopinsight.ErrorCode(err) == shopinsight.EINVALID {
			err = shopinsight.Errorf(shopinsight.EINTERNAL, "%s", shopinsight.ErrorMessage(err))
		}
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Data fetched and stored successfully",
		Data:    result.Profile,
	})
}

func (s *Server) handleListBrands(c *gin.Context) {
	var filter shopinsight.BrandFilter
	if store := c.Query("store"); store != "" {
		filter.StoreName = &store
	}
	var err error
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		s.writeError(c, err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		s.writeError(c, err)
		return
	}

	brands, err := s.BrandService.FindBrands(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if brands == nil {
		brands = []*shopinsight.BrandProfile{}
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "ok", Data: brands})
}

func (s *Server) handleGetBrand(c *gin.Context) {
	brand, err := s.BrandService.FindBrandByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "ok", Data: brand})
}

func (s *Server) handleDeleteBrand(c *gin.Context) {
	if err := s.BrandService.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "brand deleted"})
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, shopinsight.Errorf(shopinsight.EINVALID, "%s must be a non-negative integer", name)
	}
	return n, nil
}

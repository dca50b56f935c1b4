// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	_ "embed"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/scholardash/internal/view"
	"github.com/pdiddy/scholardash/pkg/types"
)

//go:embed web/index.html
var indexHTML []byte

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "records": s.ds.Len()})
}

// handleView computes and returns the ViewModel for the query filters.
// Filters that match nothing are a normal 200 response with an empty view;
// only unparseable parameters are client errors.
func (s *Server) handleView(c *gin.Context) {
	params, err := parseFilterParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view.Compute(s.ds, params, s.cfg.Analysis))
}

// filtersResponse describes the available filter controls: the country
// list, the year bounds of the data, and the CNCI slider range.
type filtersResponse struct {
	Countries []string `json:"countries"`
	MinYear   int      `json:"min_year"`
	MaxYear   int      `json:"max_year"`
	CNCIMin   float64  `json:"cnci_min"`
	CNCIMax   float64  `json:"cnci_max"`
	CNCIStep  float64  `json:"cnci_step"`
}

func (s *Server) handleFilters(c *gin.Context) {
	minYear, maxYear := s.ds.YearBounds()
	c.JSON(http.StatusOK, filtersResponse{
		Countries: s.ds.Countries(),
		MinYear:   minYear,
		MaxYear:   maxYear,
		CNCIMin:   0.0,
		CNCIMax:   2.0,
		CNCIStep:  0.1,
	})
}

func parseFilterParams(c *gin.Context) (types.FilterParams, error) {
	var params types.FilterParams
	params.Country = c.Query("country")

	var err error
	if v := c.Query("min_year"); v != "" {
		if params.MinYear, err = strconv.Atoi(v); err != nil {
			return params, fmt.Errorf("invalid min_year %q", v)
		}
	}
	if v := c.Query("max_year"); v != "" {
		if params.MaxYear, err = strconv.Atoi(v); err != nil {
			return params, fmt.Errorf("invalid max_year %q", v)
		}
	}
	if v := c.Query("min_cnci"); v != "" {
		if params.MinCNCI, err = strconv.ParseFloat(v, 64); err != nil {
			return params, fmt.Errorf("invalid min_cnci %q", v)
		}
		if params.MinCNCI < 0 {
			return params, fmt.Errorf("min_cnci must not be negative")
		}
	}
	if params.MaxYear > 0 && params.MinYear > params.MaxYear {
		return params, fmt.Errorf("min_year %d exceeds max_year %d", params.MinYear, params.MaxYear)
	}
	return params, nil
}

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"uvalue/calculator"
	"uvalue/model"
	"uvalue/report"
)

var errBothModes = errors.New("layers and assembly are mutually exclusive")

type computeResp struct {
	Assembly string                `json:"assembly,omitempty"`
	Result   *model.AssemblyResult `json:"result"`
	Ratings  []calculator.Rating   `json:"ratings"`
}

type comparisonEntry struct {
	Label   string                `json:"label"`
	Result  *model.AssemblyResult `json:"result"`
	Ratings []calculator.Rating   `json:"ratings"`
}

type compareResp struct {
	Comparisons []comparisonEntry `json:"comparisons"`
}

// compute 单个构造计算：手动输入的层或预设构造名称，二选一
func (s *Server) compute(req model.ComputeReq) (*computeResp, error) {
	layers := req.Layers
	if req.Assembly != "" {
		if len(req.Layers) > 0 {
			return nil, errBothModes
		}
		asm, err := s.assemblies.Get(req.Assembly)
		if err != nil {
			return nil, err
		}
		layers = asm.Layers
	}

	res, err := s.calc.Compute(layers)
	s.metrics.observe(res, err)
	if err != nil {
		return nil, err
	}
	return &computeResp{
		Assembly: req.Assembly,
		Result:   res,
		Ratings:  calculator.Rate(res.UValue, s.standards),
	}, nil
}

func (s *Server) compareAssemblies(req model.CompareReq) ([]model.Comparison, error) {
	labels := lo.Uniq(req.Assemblies)
	assemblies := make([]model.Assembly, 0, len(labels))
	for _, label := range labels {
		asm, err := s.assemblies.Get(label)
		if err != nil {
			return nil, err
		}
		assemblies = append(assemblies, asm)
	}
	comparisons, err := s.calc.Compare(assemblies)
	if err != nil {
		s.metrics.observe(nil, err)
		return nil, err
	}
	for _, c := range comparisons {
		s.metrics.observe(c.Result, nil)
	}
	return comparisons, nil
}

func (s *Server) compare(req model.CompareReq) (*compareResp, error) {
	comparisons, err := s.compareAssemblies(req)
	if err != nil {
		return nil, err
	}
	resp := &compareResp{Comparisons: make([]comparisonEntry, 0, len(comparisons))}
	for _, c := range comparisons {
		resp.Comparisons = append(resp.Comparisons, comparisonEntry{
			Label:   c.Label,
			Result:  c.Result,
			Ratings: calculator.Rate(c.Result.UValue, s.standards),
		})
	}
	return resp, nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"materials":   s.catalog.Len(),
		"assemblies":  len(s.assemblies.Labels()),
		"max_compare": s.calc.Config().MaxCompare,
	})
}

func (s *Server) listMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"materials": s.catalog.Materials()})
}

func (s *Server) listAssemblies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assemblies": s.assemblies.All()})
}

func (s *Server) handleCompute(c *gin.Context) {
	var req model.ComputeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request body", err))
		return
	}
	resp, err := s.compute(req)
	if err != nil {
		writeError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleComputeCSV(c *gin.Context) {
	var req model.ComputeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request body", err))
		return
	}
	resp, err := s.compute(req)
	if err != nil {
		writeError(c, asHTTPError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="capas_uvalue.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.WriteLayersCSV(c.Writer, resp.Result); err != nil {
		_ = c.Error(err)
	}
}

func (s *Server) handleCompare(c *gin.Context) {
	var req model.CompareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request body", err))
		return
	}
	resp, err := s.compare(req)
	if err != nil {
		writeError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCompareCSV(c *gin.Context) {
	var req model.CompareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid request body", err))
		return
	}
	comparisons, err := s.compareAssemblies(req)
	if err != nil {
		writeError(c, asHTTPError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="comparacion_uvalues.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.WriteComparisonCSV(c.Writer, comparisons); err != nil {
		_ = c.Error(err)
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"finboard/internal/advisor"
	"finboard/internal/catalog"
	"finboard/internal/news"
	"finboard/internal/portfolio"

	"github.com/gin-gonic/gin"
)

type buyRequest struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func (s *Server) search(c *gin.Context) {
	results := s.Catalog.Search(c.Query("q"), searchLimit)
	c.JSON(http.StatusOK, results)
}

func (s *Server) getStock(c *gin.Context) {
	sym := portfolio.NormalizeSymbol(c.Param("symbol"))
	entry, ok := s.Catalog.Lookup(sym)
	if !ok {
		respondError(c, http.StatusNotFound, "Stock not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":    entry.Symbol,
		"name":      entry.Name,
		"priceData": entry.Bars,
	})
}

func (s *Server) getNews(c *gin.Context) {
	sym := portfolio.NormalizeSymbol(c.Param("symbol"))
	entry, ok := s.Catalog.Lookup(sym)
	if !ok {
		respondError(c, http.StatusNotFound, "Stock not found")
		return
	}
	items := entry.News
	if items == nil {
		items = []catalog.NewsItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":  entry.Symbol,
		"news":    items,
		"summary": news.Summarize(entry.News),
	})
}

func (s *Server) getRecommendation(c *gin.Context) {
	sym := portfolio.NormalizeSymbol(c.Param("symbol"))
	entry, ok := s.Catalog.Lookup(sym)
	if !ok {
		respondError(c, http.StatusNotFound, "Stock not found")
		return
	}
	advice, err := advisor.Recommend(entry.Bars)
	if err != nil {
		if errors.Is(err, advisor.ErrInsufficientData) {
			respondError(c, http.StatusBadRequest, "Not enough price data for a recommendation")
			return
		}
		s.internalError(c, "recommend", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":         entry.Symbol,
		"recommendation": advice.Verdict,
		"rationale":      advice.Rationale,
		"lastPrice":      advice.LastPrice,
		"previousPrice":  advice.PreviousPrice,
	})
}

func (s *Server) getPortfolio(c *gin.Context) {
	holdings, err := s.Portfolio.Load(c.Request.Context())
	if err != nil {
		s.internalError(c, "load portfolio", err)
		return
	}
	if holdings == nil {
		holdings = []portfolio.Holding{}
	}
	c.JSON(http.StatusOK, holdings)
}

func (s *Server) buyHolding(c *gin.Context) {
	// Bounded read-then-parse: an oversized or malformed body is invalid
	// input, never a transport fault.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes)

	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !(req.Quantity > 0) {
		respondError(c, http.StatusBadRequest, "Quantity must be a positive number")
		return
	}

	sym := portfolio.NormalizeSymbol(req.Symbol)
	entry, ok := s.Catalog.Lookup(sym)
	if !ok {
		respondError(c, http.StatusNotFound, "Stock not found")
		return
	}

	updated, err := s.Portfolio.Update(c.Request.Context(), func(holdings []portfolio.Holding) ([]portfolio.Holding, error) {
		return portfolio.ApplyBuy(holdings, sym, req.Quantity, req.Price, entry.LatestClose())
	})
	if err != nil {
		if errors.Is(err, portfolio.ErrInvalidQuantity) {
			respondError(c, http.StatusBadRequest, "Quantity must be a positive number")
			return
		}
		s.internalError(c, "save portfolio", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("%s added to portfolio", sym),
		"portfolio": updated,
	})
}

func (s *Server) removeHolding(c *gin.Context) {
	sym := portfolio.NormalizeSymbol(c.Param("symbol"))

	updated, err := s.Portfolio.Update(c.Request.Context(), func(holdings []portfolio.Holding) ([]portfolio.Holding, error) {
		return portfolio.ApplyRemove(holdings, sym), nil
	})
	if err != nil {
		s.internalError(c, "save portfolio", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("%s removed from portfolio", sym),
		"portfolio": updated,
	})
}

// internalError hides fault detail from the client and keeps it in the log.
func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.Logger.Error("handler error", zap.String("op", op), zap.Error(err))
	respondError(c, http.StatusInternalServerError, "Internal server error")
}

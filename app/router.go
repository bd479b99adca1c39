package app

import (
	"io/ioutil"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats/services"
)

type handler struct {
	service services.Service
	logger  log.FieldLogger
}

// NewRouter serves the rendered stats page, its stylesheet, the raw dataset
// documents and the rendered tables as JSON.
func NewRouter(service services.Service, logger log.FieldLogger) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(pageTemplate)

	h := &handler{service: service, logger: logger}

	router.GET("/", h.index)
	router.GET("/ping", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html", []byte("pong"))
	})
	router.GET("/assets/:file", h.asset)

	api := router.Group("/api")
	api.GET("/scoreboard", h.scoreboard)
	api.GET("/utility-damage", h.utilityDamage)

	return router
}

func (h *handler) index(c *gin.Context) {
	page := h.service.RenderPage(c.Request.Context())
	c.HTML(http.StatusOK, pageTemplateName, page)
}

func (h *handler) asset(c *gin.Context) {
	file := c.Param("file")
	if file == "style.css" {
		c.Data(http.StatusOK, "text/css; charset=utf-8", styleSheet)
		return
	}

	dataset, ok := matchstats.ParseDataset(file)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	body, err := h.service.OpenDataset(c.Request.Context(), dataset)
	if err != nil {
		h.logger.WithField("dataset", dataset).WithError(err).Error(services.FetchErrorMessage)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	document, err := ioutil.ReadAll(body)
	if err != nil {
		h.logger.WithField("dataset", dataset).WithError(err).Error(services.FetchErrorMessage)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", document)
}

func (h *handler) scoreboard(c *gin.Context) {
	scoreboard, err := h.service.GetScoreboard(c.Request.Context())
	if err != nil {
		h.logger.WithField("dataset", matchstats.KillfeedDataset).WithError(err).Error(services.FetchErrorMessage)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matchstats.NewScoreboardTable(scoreboard))
}

func (h *handler) utilityDamage(c *gin.Context) {
	damage, err := h.service.GetUtilityDamage(c.Request.Context())
	if err != nil {
		h.logger.WithField("dataset", matchstats.UtilityDamageDataset).WithError(err).Error(services.FetchErrorMessage)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matchstats.NewUtilityDamageTable(damage))
}

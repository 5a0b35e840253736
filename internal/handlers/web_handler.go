package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbeariabiu/agenda/internal/config"
	"github.com/barbeariabiu/agenda/internal/httperr"
	ucBooking "github.com/barbeariabiu/agenda/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// WebHandler atende o fluxo de formulário HTML: página inicial,
// criação via POST e listagem renderizada.
type WebHandler struct {
	cfg      *config.Config
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
}

func NewWebHandler(
	cfg *config.Config,
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
) *WebHandler {
	return &WebHandler{
		cfg:      cfg,
		createUC: createUC,
		listUC:   listUC,
	}
}

// ======================================================
// PAGES
// ======================================================

func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Shop": h.cfg.ShopName,
	})
}

func (h *WebHandler) ListPage(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, msgListFailed)
		return
	}

	c.HTML(http.StatusOK, "agendamentos.html", gin.H{
		"Shop":         h.cfg.ShopName,
		"Agendamentos": bookings,
	})
}

// ======================================================
// CREATE (FORM)
// ======================================================

// Agendar recebe o formulário e, em caso de sucesso, redireciona
// para o link de notificação do dono.
func (h *WebHandler) Agendar(c *gin.Context) {
	in := ucBooking.CreateInput{
		Nome:     c.PostForm("nome"),
		Telefone: c.PostForm("telefone"),
		Data:     c.PostForm("data"),
		Hora:     c.PostForm("hora"),
	}

	res, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			c.String(http.StatusBadRequest, businessMessage(h.cfg, code))
			return
		}
		c.String(http.StatusInternalServerError, msgSaveFailed)
		return
	}

	c.Redirect(http.StatusFound, res.LinkNotificacao)
}

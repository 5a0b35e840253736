package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/barbeariabiu/agenda/internal/config"
)

const whatsappHost = "https://wa.me"

// Links carrega os dois deep-links gerados para um agendamento:
// a notificação para o dono e a confirmação para o cliente.
type Links struct {
	Owner    string
	Customer string
}

type Builder struct {
	ownerPhone  string
	countryCode string
	shopName    string
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		ownerPhone:  cfg.OwnerPhone,
		countryCode: cfg.CountryCode,
		shopName:    cfg.ShopName,
	}
}

// Build monta os links de WhatsApp a partir dos campos do agendamento.
// Construção de string pura; nenhuma chamada de rede acontece aqui.
func (b *Builder) Build(nome, telefone, data, hora string) Links {
	customerPhone := onlyDigits(telefone)
	ownerPhone := onlyDigits(b.ownerPhone)

	ownerMsg := fmt.Sprintf(
		"*NOVO AGENDAMENTO*\n\nCliente: %s\nTelefone: %s\nData: %s\nHora: %s",
		nome, telefone, data, hora,
	)

	customerMsg := fmt.Sprintf(
		"Olá %s! Seu agendamento na *%s* foi confirmado para:\n\n📅 Data: %s\n⏰ Hora: %s\n\nObrigado por escolher nossos serviços! 🎉",
		nome, b.shopName, data, hora,
	)

	return Links{
		Owner:    b.link(ownerPhone, ownerMsg),
		Customer: b.link(customerPhone, customerMsg),
	}
}

func (b *Builder) link(phone, message string) string {
	return fmt.Sprintf(
		"%s/%s%s?text=%s",
		whatsappHost, b.countryCode, phone, encodeMessage(message),
	)
}

// encodeMessage escapa a mensagem para uso como query param,
// com espaços como %20 (o formato que o wa.me espera).
func encodeMessage(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

func onlyDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

package notify

import "go.uber.org/zap"

// LinkEvent registra os links gerados para um agendamento.
type LinkEvent struct {
	Nome  string
	Links Links
}

// Dispatcher registra os links fora do caminho da requisição.
// Fila cheia descarta o evento: observabilidade nunca bloqueia a API.
type Dispatcher struct {
	log   *zap.Logger
	queue chan LinkEvent
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan LinkEvent, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.log.Info("links de notificação gerados",
			zap.String("cliente", ev.Nome),
			zap.String("link_notificacao", ev.Links.Owner),
			zap.String("link_cliente", ev.Links.Customer),
		)
	}
}

func (d *Dispatcher) Dispatch(ev LinkEvent) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("fila de notificações cheia, evento descartado")
	}
}

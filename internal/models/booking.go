package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking é o documento persistido na coleção "agendamentos".
type Booking struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PublicID string             `bson:"public_id" json:"id"`

	Nome     string `bson:"nome" json:"nome"`
	Telefone string `bson:"telefone" json:"telefone"`

	// Data de exibição (DD/MM), derivada da data ISO no momento da criação.
	Data string `bson:"data" json:"data"`
	Hora string `bson:"hora" json:"hora"`

	// "YYYY-MM-DD HH:MM" — ordenação lexical == ordenação cronológica.
	DataCompleta string `bson:"data_completa" json:"data_completa"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

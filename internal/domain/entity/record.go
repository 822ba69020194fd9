package entity

import (
	"encoding/json"
	"time"
)

// Tipos de registro del almacén.
const (
	RecordTransaction = "transacao"
	RecordProduct     = "produto"
	RecordOutbound    = "saida"
	RecordRegistry    = "cadastros"
)

// RegistryRecordKey clave fija del único registro de cadastros.
const RegistryRecordKey = "cadastros"

// Record es la unidad del almacén: un payload JSON etiquetado por tipo.
// Key es el ID de la entidad y permite la actualización en el lugar.
type Record struct {
	ID         int64
	Kind       string
	Key        string
	Payload    json.RawMessage
	ModifiedAt time.Time
}

package repository

// Repositories agrupa los repositorios atados a un mismo RecordStore
// (el pool o una transacción abierta por un TxRunner).
type Repositories struct {
	Records      RecordStore
	Transactions TransactionRepository
	Products     ProductRepository
	Movements    OutboundMovementRepository
	Registry     RegistryRepository
}

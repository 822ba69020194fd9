package dto

// ImportBackupResponse resumen de POST /api/backup.
type ImportBackupResponse struct {
	Transactions int    `json:"transactions"`
	Products     int    `json:"products"`
	Movements    int    `json:"movements"`
	BackupDate   string `json:"backup_date"`
}

package contextkeys

type ContextKey string

const (
	// DBContextKey - ключ для *gorm.DB в контексте запроса (пул или транзакция)
	DBContextKey ContextKey = "db"
)

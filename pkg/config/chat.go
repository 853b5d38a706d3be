// pkg/config/chat.go
package config

// StoreType selects a backing implementation for a pluggable store
type StoreType string

const (
	StoreRedis    StoreType = "redis"
	StorePostgres StoreType = "postgres"
	StoreMemory   StoreType = "memory"
)

type ChatConfig struct {
	// ShortTermMaxMessages bounds the per-session rolling buffer
	ShortTermMaxMessages int
	// TopMemories is how many long-term facts enter each prompt
	TopMemories int
	// HistoryTail is how many buffer entries the turn response echoes back
	HistoryTail int
	BufferStore StoreType
	MemoryStore StoreType
}

func loadChatConfig() ChatConfig {
	return ChatConfig{
		ShortTermMaxMessages: getEnvInt("SHORT_TERM_MAX_MESSAGES", 20),
		TopMemories:          getEnvInt("CHAT_TOP_MEMORIES", 5),
		HistoryTail:          getEnvInt("CHAT_HISTORY_TAIL", 10),
		BufferStore:          StoreType(getEnv("CHAT_BUFFER_STORE", string(StoreRedis))),
		MemoryStore:          StoreType(getEnv("CHAT_MEMORY_STORE", string(StorePostgres))),
	}
}

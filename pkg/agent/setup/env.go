package setup

const (
	EnvOpenAiApiKey        = "OPENAI_API_KEY"
	EnvOpenAiModel         = "OPENAI_MODEL"
	EnvOpenAiBaseUrl       = "OPENAI_BASE_URL"
	EnvLlmTemperature      = "LLM_TEMPERATURE"
	EnvLlmConcurrency      = "LLM_CONCURRENCY"
	EnvFallbackToDefaults  = "FALLBACK_TO_DEFAULTS"
	EnvStateFile           = "STATE_FILE"
	EnvStateFlushInterval  = "STATE_FLUSH_INTERVAL"
	EnvDstackTappdEndpoint = "DSTACK_TAPPD_ENDPOINT"
	EnvPinataJwtKey        = "PINATA_JWT_KEY"
	EnvApiIpPort           = "API_IP_PORT"
)

const (
	DefaultOpenAiModel        = "gpt-4-1106-preview"
	DefaultLlmTemperature     = 0.8
	DefaultLlmConcurrency     = 16
	DefaultStateFile          = "state.json"
	DefaultStateFlushInterval = "1m"
)

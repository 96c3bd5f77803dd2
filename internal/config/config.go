package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/briefing"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Beeswax  Beeswax  `mapstructure:",squash"`
	Brief    Brief    `mapstructure:",squash"`
	Report   Report   `mapstructure:",squash"`
	QASync   QASync   `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	// Tamanho máximo do upload de brief, em MB
	MaxUploadMB int64    `mapstructure:"max_upload_mb"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

// MaxUploadBytes retorna o limite de upload em bytes
func (s Server) MaxUploadBytes() int64 {
	if s.MaxUploadMB <= 0 {
		return 20 << 20
	}
	return s.MaxUploadMB << 20
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"database_connect_timeout"`
}

type Beeswax struct {
	URL      string        `mapstructure:"beeswax_url"`
	Email    string        `mapstructure:"beeswax_email"`
	Password string        `mapstructure:"beeswax_password"`
	Timeout  time.Duration `mapstructure:"beeswax_timeout"`
}

// Brief configura o motor de reconciliação; vazio usa os padrões do pacote briefing
type Brief struct {
	Sheet                string   `mapstructure:"brief_sheet"`
	SearchWindow         int      `mapstructure:"brief_search_window"`
	BlankRunLimit        int      `mapstructure:"brief_blank_run_limit"`
	PlacementFallbackRow int      `mapstructure:"brief_placement_fallback_row"`
	CampaignIDPattern    string   `mapstructure:"brief_campaign_id_pattern"`
	TargetAnchors        []string `mapstructure:"brief_target_anchors"`
	PlacementAnchors     []string `mapstructure:"brief_placement_anchors"`
}

type Report struct {
	OutputDir string `mapstructure:"report_output_dir"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// QASync processa periodicamente os briefs deixados na pasta de entrada
type QASync struct {
	CronSchedule string `mapstructure:"qa_sync_cron"`
	InboxDir     string `mapstructure:"qa_sync_inbox_dir"`
	ProcessedDir string `mapstructure:"qa_sync_processed_dir"`
	Enabled      bool   `mapstructure:"qa_sync_enabled"`
}

// BriefingConfig converte a configuração do ambiente na configuração explícita do motor
func (b Brief) BriefingConfig() briefing.Config {
	cfg := briefing.DefaultConfig()

	if b.SearchWindow > 0 {
		cfg.SearchWindow = b.SearchWindow
	}
	if b.BlankRunLimit > 0 {
		cfg.BlankRunLimit = b.BlankRunLimit
	}
	if b.CampaignIDPattern != "" {
		cfg.CampaignIDPattern = b.CampaignIDPattern
	}
	if b.PlacementFallbackRow > 0 {
		cfg.Placement.FallbackRow = b.PlacementFallbackRow
	}
	if len(b.TargetAnchors) > 0 {
		cfg.Target.Anchors = b.TargetAnchors
	}
	if len(b.PlacementAnchors) > 0 {
		cfg.Placement.Anchors = b.PlacementAnchors
	}

	return cfg
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("MAX_UPLOAD_MB", 20)
	viper.SetDefault("CORS_ORIGINS", "") // separados por vírgula

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_qa?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", "10s")

	viper.SetDefault("BEESWAX_URL", "https://catalina.api.beeswax.com/rest/v2")
	viper.SetDefault("BEESWAX_EMAIL", "")
	viper.SetDefault("BEESWAX_PASSWORD", "")
	viper.SetDefault("BEESWAX_TIMEOUT", "30s")

	viper.SetDefault("BRIEF_SHEET", "")
	viper.SetDefault("BRIEF_SEARCH_WINDOW", briefing.DefaultSearchWindow)
	viper.SetDefault("BRIEF_BLANK_RUN_LIMIT", briefing.DefaultBlankRunLimit)
	viper.SetDefault("BRIEF_PLACEMENT_FALLBACK_ROW", briefing.DefaultPlacementFallbackRow)
	viper.SetDefault("BRIEF_CAMPAIGN_ID_PATTERN", briefing.DefaultCampaignIDPattern)
	viper.SetDefault("BRIEF_TARGET_ANCHORS", "")    // separados por vírgula
	viper.SetDefault("BRIEF_PLACEMENT_ANCHORS", "") // separados por vírgula

	viper.SetDefault("REPORT_OUTPUT_DIR", "reports")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "720h")

	viper.SetDefault("QA_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("QA_SYNC_INBOX_DIR", "inbox")
	viper.SetDefault("QA_SYNC_PROCESSED_DIR", "inbox/processed")
	viper.SetDefault("QA_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Brief.TargetAnchors = compact(config.Brief.TargetAnchors)
	config.Brief.PlacementAnchors = compact(config.Brief.PlacementAnchors)
	config.Server.CorsOrigins = compact(config.Server.CorsOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove entradas vazias deixadas pelo split de listas vazias
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

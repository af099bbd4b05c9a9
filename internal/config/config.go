// Package config carrega a configuração do processo a partir do ambiente.
package config

import (
	"fmt"
	"os"
)

// Config é construída uma única vez no início do processo e passada
// por referência aos construtores; nenhum componente lê ENV depois disso.
type Config struct {
	Addr        string
	BearerToken string
	ServidorBI  string
	TaskName    string
	DBServer    string
	DBName      string
	DBUser      string
	DBPassword  string
}

// Load lê as variáveis de ambiente com os defaults documentados.
// As variáveis de banco não têm default: a ausência só falha no primeiro uso.
func Load() *Config {
	return &Config{
		Addr:        ":" + getEnv("PORT", "5000"),
		BearerToken: getEnv("API_TOKEN", "seu-token-super-secreto-aqui"),
		ServidorBI:  getEnv("SERVIDOR_BI", "192.168.0.210"),
		TaskName:    getEnv("TASK_NAME", "AtualizaBI_TI"),
		DBServer:    getEnv("DB_SERVER", ""),
		DBName:      getEnv("DB_NAME", ""),
		DBUser:      getEnv("DB_USER", ""),
		DBPassword:  getEnv("DB_PASSWORD", ""),
	}
}

// DSN monta a string de conexão com o PostgreSQL.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s", c.DBUser, c.DBPassword, c.DBServer, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

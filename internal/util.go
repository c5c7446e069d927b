package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

type Secrets struct {
	Finnhub       FinnhubSecrets `json:"finnhub"`
	QuoteProvider string         `json:"quoteProvider"` // "finnhub" or "yahoo"
	Db            DbSecrets      `json:"db"`
	Jwt           string         `json:"jwt"`
}

type FinnhubSecrets struct {
	ApiKey   string `json:"apiKey"`
	Endpoint string `json:"endpoint"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("PAPERTRADE_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("PAPERTRADE_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets.json: %w", err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}

func StringPointer(s string) *string {
	return &s
}

func FloatPointer(f float64) *float64 {
	return &f
}

func Int64Pointer(i int64) *int64 {
	return &i
}

func Int32Pointer(i int32) *int32 {
	return &i
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

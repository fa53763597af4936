package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	Chat struct {
		APIKey            string `json:"api_key"`
		Token             string `json:"token"`
		UserID            string `json:"user_id"`
		DisplayName       string `json:"display_name"`
		AvatarURLTemplate string `json:"avatar_url_template"`
		ChannelLimit      int    `json:"channel_limit"`
	} `json:"chat,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		WSAddress      string   `json:"ws_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PingInterval   Duration `json:"ping_interval"`
	} `json:"adapter,omitempty"`

	DevServer struct {
		Address         string   `json:"address"`
		Secret          string   `json:"secret"`
		ChatterInterval Duration `json:"chatter_interval"`
		TokenTTL        Duration `json:"token_ttl"`
	} `json:"devserver,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Chat: Chat{
			APIKey:            jsonCfg.Chat.APIKey,
			Token:             jsonCfg.Chat.Token,
			UserID:            jsonCfg.Chat.UserID,
			DisplayName:       jsonCfg.Chat.DisplayName,
			AvatarURLTemplate: jsonCfg.Chat.AvatarURLTemplate,
			ChannelLimit:      jsonCfg.Chat.ChannelLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			WSAddress:      jsonCfg.Adapter.WSAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PingInterval:   time.Duration(jsonCfg.Adapter.PingInterval),
		},
		DevServer: DevServer{
			Address:         jsonCfg.DevServer.Address,
			Secret:          jsonCfg.DevServer.Secret,
			ChatterInterval: time.Duration(jsonCfg.DevServer.ChatterInterval),
			TokenTTL:        time.Duration(jsonCfg.DevServer.TokenTTL),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

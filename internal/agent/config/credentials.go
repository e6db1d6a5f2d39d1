// Package config хранит локальные учётные данные CLI-клиента.
//
// Единственное, что клиент запоминает между запусками, — auth токен,
// полученный при логине. Он лежит в JSON-файле в домашней директории:
//
//	~/.cohort-tools/credentials.json
//
// Токен — чувствительные данные, поэтому файл пишется с правами 0600,
// а директория создаётся с правами 0700.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Credentials — содержимое файла учётных данных.
type Credentials struct {
	AuthToken string `json:"auth_token"`
}

// DefaultPath возвращает путь к файлу учётных данных:
// <home>/.cohort-tools/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cohort-tools", "credentials.json"), nil
}

// Load читает учётные данные из файла path.
//
// Отсутствующий файл — не ошибка: до первого логина его и не должно быть,
// возвращаются пустые Credentials. Битый JSON — ошибка.
func Load(path string) (*Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var c Credentials
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save записывает учётные данные в файл path.
//
// Запись идёт через временный файл с последующим переименованием, чтобы
// при падении процесса не остался полузаписанный файл с токеном.
func Save(path string, c *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

package queue

import (
	"os"
	"strconv"
	"time"
)

// Config — эвристики очереди. В исходной системе это были литералы
// 15 и 30 минут, здесь они настраиваются окружением.
type Config struct {
	WaitPerPatientMin int           // оценка времени приёма одного пациента
	EmergencyDelayMin int           // сдвиг первого ожидающего при экстренном случае
	OpTimeout         time.Duration // таймаут одной операции с хранилищем
}

func LoadConfig() Config {
	cfg := Config{
		WaitPerPatientMin: 15,
		EmergencyDelayMin: 30,
		OpTimeout:         3 * time.Second,
	}
	if v, err := strconv.Atoi(os.Getenv("WAIT_PER_PATIENT_MIN")); err == nil && v > 0 {
		cfg.WaitPerPatientMin = v
	}
	if v, err := strconv.Atoi(os.Getenv("EMERGENCY_DELAY_MIN")); err == nil && v > 0 {
		cfg.EmergencyDelayMin = v
	}
	if v, err := strconv.Atoi(os.Getenv("STORE_TIMEOUT_SEC")); err == nil && v > 0 {
		cfg.OpTimeout = time.Duration(v) * time.Second
	}
	return cfg
}

// EstimatedWaitMinutes — оценка ожидания для свежей записи: (позиция - 1) * минут на пациента.
func (c Config) EstimatedWaitMinutes(position int) int {
	return (position - 1) * c.WaitPerPatientMin
}

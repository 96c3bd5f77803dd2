package qarunning

import "time"

// SetClock fixa o relógio do serviço nos testes do pacote externo
func SetClock(s *Service, now func() time.Time) {
	s.now = now
}

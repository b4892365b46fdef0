// 웹훅으로 수신한 인시던트의 인메모리 보관소
//
// 영속 저장소 없이 최근 N건만 유지하며, 최대치를 넘으면 가장 오래된
// 항목부터 제거. 동시 수신에 대한 잠금은 LRU 캐시 내부 락이 담당

package store

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
)

// IncidentStore 구조체 정의
// Add만 수행하고 조회는 Peek/Keys를 사용하기 때문에 제거 순서는 수신 순서와 동일
type IncidentStore struct {
	recent *lru.Cache[string, model.Incident]
}

// IncidentStore 객체 생성
func NewIncidentStore(maxRecent int) (*IncidentStore, error) {
	if maxRecent <= 0 {
		maxRecent = 100
	}
	cache, err := lru.New[string, model.Incident](maxRecent)
	if err != nil {
		return nil, err
	}
	return &IncidentStore{recent: cache}, nil
}

// Add - 인시던트 저장, 최대치 초과 시 가장 오래된 항목 제거
func (s *IncidentStore) Add(inc model.Incident) {
	s.recent.Add(inc.ID, inc)
}

// List - 최신순 목록 조회
//
// status가 비어 있지 않으면 해당 status만 반환하고,
// limit이 0보다 크면 그 개수까지만 반환
func (s *IncidentStore) List(status string, limit int) []model.Incident {
	keys := s.recent.Keys() // 오래된 순
	incidents := make([]model.Incident, 0, len(keys))

	for i := len(keys) - 1; i >= 0; i-- {
		inc, ok := s.recent.Peek(keys[i])
		if !ok {
			continue
		}
		if status != "" && inc.Status != status {
			continue
		}
		incidents = append(incidents, inc)
		if limit > 0 && len(incidents) >= limit {
			break
		}
	}

	return incidents
}

// Len - 현재 보관 중인 인시던트 수
func (s *IncidentStore) Len() int {
	return s.recent.Len()
}

// Purge - 전체 삭제 후 삭제된 개수 반환
func (s *IncidentStore) Purge() int {
	removed := s.recent.Len()
	s.recent.Purge()
	return removed
}

// Stats - 보관 중인 전체 인시던트에 대한 집계
func (s *IncidentStore) Stats() model.IncidentStats {
	return model.ComputeStats(s.List("", 0))
}

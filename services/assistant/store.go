// File: services/assistant/store.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"aster/models"

	"github.com/go-redis/redis/v8"
)

const proposalPrefix = "proposal:"

// ProposalStore keeps meeting proposals between drafting and the user's
// confirm/cancel decision. Get returns (nil, nil) on a miss.
type ProposalStore interface {
	Save(ctx context.Context, p *models.MeetingProposal) error
	Get(ctx context.Context, proposalID string) (*models.MeetingProposal, error)
	Delete(ctx context.Context, proposalID string) error
}

// RedisProposalStore is the production store. Proposals expire after the TTL
// regardless of status; confirmed and cancelled proposals are kept until then
// so repeated decisions are rejected rather than mistaken for unknown IDs.
type RedisProposalStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProposalStore(client *redis.Client, ttl time.Duration) *RedisProposalStore {
	return &RedisProposalStore{client: client, ttl: ttl}
}

func (s *RedisProposalStore) Save(ctx context.Context, p *models.MeetingProposal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal proposal: %w", err)
	}
	return s.client.Set(ctx, proposalPrefix+p.ProposalID, data, s.ttl).Err()
}

func (s *RedisProposalStore) Get(ctx context.Context, proposalID string) (*models.MeetingProposal, error) {
	data, err := s.client.Get(ctx, proposalPrefix+proposalID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p models.MeetingProposal
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to parse proposal: %w", err)
	}
	return &p, nil
}

func (s *RedisProposalStore) Delete(ctx context.Context, proposalID string) error {
	return s.client.Del(ctx, proposalPrefix+proposalID).Err()
}

// MemoryProposalStore is an in-process store used by tests.
type MemoryProposalStore struct {
	mu        sync.Mutex
	proposals map[string]models.MeetingProposal
}

func NewMemoryProposalStore() *MemoryProposalStore {
	return &MemoryProposalStore{proposals: make(map[string]models.MeetingProposal)}
}

func (s *MemoryProposalStore) Save(ctx context.Context, p *models.MeetingProposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proposals[p.ProposalID] = *p
	return nil
}

func (s *MemoryProposalStore) Get(ctx context.Context, proposalID string) (*models.MeetingProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.proposals[proposalID]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (s *MemoryProposalStore) Delete(ctx context.Context, proposalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.proposals, proposalID)
	return nil
}

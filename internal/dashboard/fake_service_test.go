package dashboard

import (
	"context"
	"sync"
	"testing"

	"foodadmin/internal/food"
)

// fakeService records calls and answers from canned responses.
type fakeService struct {
	mu sync.Mutex

	listFoods []food.Food
	listErr   error

	createResp food.Food
	createErr  error
	created    []food.Draft

	updateResp *food.Food // nil echoes the request body
	updateErr  error
	updated    []updateCall

	deleteErr error
	deleted   []int
}

type updateCall struct {
	id   int
	body food.Food
}

func (s *fakeService) List(ctx context.Context) ([]food.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listFoods, s.listErr
}

func (s *fakeService) Create(ctx context.Context, d food.Draft) (food.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, d)
	return s.createResp, s.createErr
}

func (s *fakeService) Update(ctx context.Context, id int, f food.Food) (food.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updated = append(s.updated, updateCall{id: id, body: f})
	if s.updateErr != nil {
		return food.Food{}, s.updateErr
	}
	if s.updateResp != nil {
		return *s.updateResp, nil
	}
	return f, nil
}

func (s *fakeService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

// chanService hands each call to the test over a channel and blocks until the
// test replies, so tests control the order responses arrive in.
type chanService struct {
	t     *testing.T
	calls chan *chanCall
}

type chanCall struct {
	op    string
	id    int
	draft food.Draft
	body  food.Food
	reply chan chanReply
}

type chanReply struct {
	food  food.Food
	foods []food.Food
	err   error
}

func newChanService(t *testing.T) *chanService {
	return &chanService{t: t, calls: make(chan *chanCall)}
}

func (s *chanService) send(c *chanCall) chanReply {
	c.reply = make(chan chanReply, 1)
	s.calls <- c
	return <-c.reply
}

func (s *chanService) List(ctx context.Context) ([]food.Food, error) {
	r := s.send(&chanCall{op: "list"})
	return r.foods, r.err
}

func (s *chanService) Create(ctx context.Context, d food.Draft) (food.Food, error) {
	r := s.send(&chanCall{op: "create", draft: d})
	return r.food, r.err
}

func (s *chanService) Update(ctx context.Context, id int, f food.Food) (food.Food, error) {
	r := s.send(&chanCall{op: "update", id: id, body: f})
	return r.food, r.err
}

func (s *chanService) Delete(ctx context.Context, id int) error {
	r := s.send(&chanCall{op: "delete", id: id})
	return r.err
}

// expect receives the next call and checks its op.
func (s *chanService) expect(op string) *chanCall {
	s.t.Helper()
	c := <-s.calls
	if c.op != op {
		s.t.Fatalf("expected %s call, got %s", op, c.op)
	}
	return c
}

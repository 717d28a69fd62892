package dashboard

import (
	"context"
	"testing"

	"foodadmin/internal/food"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

// Overlapping adds reconcile in response order, not request order.
func TestOverlappingAdds_ApplyInArrivalOrder(t *testing.T) {
	svc := newChanService(t)
	logger, _ := test.NewNullLogger()
	d := New(svc, Options{Logger: logger})

	doneA := make(chan Result)
	go func() { doneA <- d.AddFood(context.Background(), food.Draft{Name: "A"}) }()
	callA := svc.expect("create")

	doneB := make(chan Result)
	go func() { doneB <- d.AddFood(context.Background(), food.Draft{Name: "B"}) }()
	callB := svc.expect("create")

	callB.reply <- chanReply{food: food.Food{ID: 2, Name: "B", Available: true}}
	<-doneB
	callA.reply <- chanReply{food: food.Food{ID: 1, Name: "A", Available: true}}
	<-doneA

	foods := d.Foods()
	if assert.Len(t, foods, 2) {
		assert.Equal(t, "B", foods[0].Name)
		assert.Equal(t, "A", foods[1].Name)
	}
}

// A delete that resolves while an update is in flight wins; the late update
// response finds nothing to replace.
func TestUpdateAfterConcurrentDelete_DoesNotResurrect(t *testing.T) {
	svc := newChanService(t)
	logger, _ := test.NewNullLogger()
	d := New(svc, Options{Foods: testFoods(), Logger: logger})
	d.OpenEditDialog(testFoods()[1])

	updateDone := make(chan Result)
	go func() {
		updateDone <- d.UpdateFood(context.Background(), food.Patch{Price: food.Ptr("1.00")})
	}()
	update := svc.expect("update")
	assert.Equal(t, 3, update.id)

	deleteDone := make(chan Result)
	go func() { deleteDone <- d.DeleteFood(context.Background(), 3) }()
	del := svc.expect("delete")
	del.reply <- chanReply{}
	<-deleteDone

	update.reply <- chanReply{food: update.body}
	res := <-updateDone

	assert.True(t, res.OK())
	_, found := d.Find(3)
	assert.False(t, found)
	assert.Len(t, d.Foods(), 2)
}

// The mount fetch can land after a user add; it replaces the list wholesale.
func TestInitializeResponseReplacesEarlierAdd(t *testing.T) {
	svc := newChanService(t)
	logger, _ := test.NewNullLogger()
	d := New(svc, Options{Logger: logger})

	initDone := make(chan error)
	go func() { initDone <- d.Initialize(context.Background()) }()
	list := svc.expect("list")

	addDone := make(chan Result)
	go func() { addDone <- d.AddFood(context.Background(), food.Draft{Name: "A"}) }()
	svc.expect("create").reply <- chanReply{food: food.Food{ID: 9, Name: "A"}}
	<-addDone

	list.reply <- chanReply{foods: testFoods()}
	assert.NoError(t, <-initDone)
	assert.Equal(t, testFoods(), d.Foods())
}

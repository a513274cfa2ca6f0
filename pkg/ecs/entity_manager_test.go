package ecs

import (
	"reflect"
	"sort"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testFlagComponent struct {
	On bool
}

type testVelocityComponent struct {
	DX float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为 InvalidEntity
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Created entity must not equal InvalidEntity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 120, Y: 80})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	pos := comp.(*testPositionComponent)
	if pos.X != 120 || pos.Y != 80 {
		t.Errorf("Component data mismatch, expected (120, 80), got (%f, %f)", pos.X, pos.Y)
	}

	// 同类型组件重复添加会覆盖
	em.AddComponent(id, &testPositionComponent{X: 1})
	comp, _ = em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if comp.(*testPositionComponent).X != 1 {
		t.Error("AddComponent should replace a component of the same type")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testPositionComponent{})

	if _, found := em.GetComponent(EntityID(42), reflect.TypeOf(&testPositionComponent{})); found {
		t.Error("AddComponent must not create entities implicitly")
	}
	if got := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{})); len(got) != 0 {
		t.Errorf("GetEntitiesWith = %v, want none", got)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	var ids []EntityID
	for i := 0; i < 16; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testFlagComponent{})
		}
		ids = append(ids, id)
	}

	all := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(all) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(all))
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("Unexpected entity at %d: got %d, want %d", i, all[i], ids[i])
		}
	}

	both := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testFlagComponent{}),
	)
	if len(both) != 8 {
		t.Errorf("Expected 8 entities with both components, got %d", len(both))
	}
}

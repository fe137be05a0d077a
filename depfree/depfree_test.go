package depfree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessgraph/accessgraph/store"
)

type recordingProcessor struct {
	calls []string
}

func (r *recordingProcessor) AddUser(user string) error    { r.calls = append(r.calls, "AddUser:"+user); return nil }
func (r *recordingProcessor) RemoveUser(string) error      { return nil }
func (r *recordingProcessor) AddGroup(group string) error  { r.calls = append(r.calls, "AddGroup:"+group); return nil }
func (r *recordingProcessor) RemoveGroup(string) error     { return nil }
func (r *recordingProcessor) AddUserToGroupMapping(user, group string) error {
	r.calls = append(r.calls, "AddUserToGroupMapping:"+user+"->"+group)

	return nil
}
func (r *recordingProcessor) RemoveUserToGroupMapping(string, string) error { return nil }
func (r *recordingProcessor) AddGroupToGroupMapping(string, string) error  { return nil }
func (r *recordingProcessor) RemoveGroupToGroupMapping(string, string) error { return nil }
func (r *recordingProcessor) AddUserToComponentMapping(string, store.Component, store.AccessLevel) error {
	return nil
}
func (r *recordingProcessor) RemoveUserToComponentMapping(string, store.Component, store.AccessLevel) error {
	return nil
}
func (r *recordingProcessor) AddGroupToComponentMapping(string, store.Component, store.AccessLevel) error {
	return nil
}
func (r *recordingProcessor) RemoveGroupToComponentMapping(string, store.Component, store.AccessLevel) error {
	return nil
}
func (r *recordingProcessor) AddEntityType(entityType string) error {
	r.calls = append(r.calls, "AddEntityType:"+entityType)

	return nil
}
func (r *recordingProcessor) RemoveEntityType(string) error { return nil }
func (r *recordingProcessor) AddEntity(entityType, entity string) error {
	r.calls = append(r.calls, "AddEntity:"+entityType+"/"+entity)

	return nil
}
func (r *recordingProcessor) RemoveEntity(string, string) error { return nil }
func (r *recordingProcessor) AddUserToEntityMapping(user, entityType, entity string) error {
	r.calls = append(r.calls, "AddUserToEntityMapping:"+user+":"+entityType+"/"+entity)

	return nil
}
func (r *recordingProcessor) RemoveUserToEntityMapping(string, string, string) error { return nil }
func (r *recordingProcessor) AddGroupToEntityMapping(string, string, string) error   { return nil }
func (r *recordingProcessor) RemoveGroupToEntityMapping(string, string, string) error { return nil }

func TestAddUserToGroupMappingPrependsMissingPrimaries(t *testing.T) {
	proc := &recordingProcessor{}
	m := NewManager(WithEventProcessor(proc))

	require.NoError(t, m.AddUserToGroupMapping("alice", "eng"))

	assert.Equal(t, []string{
		"AddUser:alice",
		"AddGroup:eng",
		"AddUserToGroupMapping:alice->eng",
	}, proc.calls)
	assert.True(t, m.ContainsUser("alice"))
	assert.True(t, m.ContainsGroup("eng"))
}

func TestAddUserToEntityMappingPrependsInDependencyOrder(t *testing.T) {
	proc := &recordingProcessor{}
	m := NewManager(WithEventProcessor(proc))

	require.NoError(t, m.AddUserToEntityMapping("alice", "document", "doc-1"))

	assert.Equal(t, []string{
		"AddUser:alice",
		"AddEntityType:document",
		"AddEntity:document/doc-1",
		"AddUserToEntityMapping:alice:document/doc-1",
	}, proc.calls)
}

func TestAddUserIsIdempotentOnDuplicate(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddUser("alice"))
	require.NoError(t, m.AddUser("alice"))
	assert.True(t, m.ContainsUser("alice"))
}

func TestRemoveUserIsNoOpOnMissing(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.RemoveUser("ghost"))
}

func TestIdempotencySignalFiresOnlyWhenEnabled(t *testing.T) {
	var signals []Signal
	m := NewManager(WithIdempotencySignal(func(s Signal) { signals = append(signals, s) }))

	require.NoError(t, m.AddUser("alice"))
	require.NoError(t, m.AddUser("alice"))

	require.Len(t, signals, 1)
	assert.Equal(t, "AddUser", signals[0].Kind)
	assert.Equal(t, "alice", signals[0].Key)
}

func TestAddGroupToGroupMappingSelfMappingIsHardFailure(t *testing.T) {
	m := NewManager()
	err := m.AddGroupToGroupMapping("a", "a")
	require.Error(t, err)
}

func TestAddGroupToGroupMappingCycleIsHardFailure(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddGroupToGroupMapping("a", "b"))
	err := m.AddGroupToGroupMapping("b", "a")
	require.Error(t, err)
}

func TestMiddlewareRunsBeforeAndAfter(t *testing.T) {
	var before, after []string
	mw := Middleware{
		Before: func(kind string) { before = append(before, kind) },
		After:  func(kind string, err error) { after = append(after, kind) },
	}
	m := NewManager(WithMiddleware(mw))

	require.NoError(t, m.AddUser("alice"))

	assert.Equal(t, []string{"AddUser"}, before)
	assert.Equal(t, []string{"AddUser"}, after)
}

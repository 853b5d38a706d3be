package chatinfra

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/nextalk-ai/nextalk/pkg/chat"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRedisClient implements only the list commands the buffer uses
type mockRedisClient struct {
	redis.Cmdable

	mu    sync.Mutex
	lists map[string][]string
}

func newMockRedisClient() *mockRedisClient {
	return &mockRedisClient{
		lists: make(map[string][]string),
	}
}

func (m *mockRedisClient) RPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[key]
	for _, val := range values {
		list = append(list, normalizeValue(val))
	}
	m.lists[key] = list
	return redis.NewIntResult(int64(len(list)), nil)
}

func (m *mockRedisClient) LTrim(_ context.Context, key string, start, stop int64) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[key]
	n := int64(len(list))

	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if start > stop || start >= n {
		m.lists[key] = nil
		return redis.NewStatusResult("OK", nil)
	}
	if stop >= n {
		stop = n - 1
	}
	m.lists[key] = list[start : stop+1]
	return redis.NewStatusResult("OK", nil)
}

func (m *mockRedisClient) LRange(_ context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[key]
	if start == 0 && stop == -1 {
		out := make([]string, len(list))
		copy(out, list)
		return redis.NewStringSliceResult(out, nil)
	}
	return redis.NewStringSliceResult(nil, nil)
}

func (m *mockRedisClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for _, key := range keys {
		if _, ok := m.lists[key]; ok {
			delete(m.lists, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func normalizeValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

func TestRedisBufferRoundTrip(t *testing.T) {
	client := newMockRedisClient()
	buffer := NewRedisShortTermBuffer(client, 20)
	ctx := context.Background()
	session := kernel.NewSessionID()

	require.NoError(t, buffer.Append(ctx, session, chat.NewUserMessage("hello")))
	require.NoError(t, buffer.Append(ctx, session, chat.NewAssistantMessage("hi!")))

	messages, err := buffer.Read(ctx, session)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, chat.RoleUser, messages[0].Role)
	assert.Equal(t, "hello", messages[0].Text)
	assert.Equal(t, chat.RoleAssistant, messages[1].Role)
	assert.Equal(t, "hi!", messages[1].Text)
}

func TestRedisBufferTrimsToCapacity(t *testing.T) {
	client := newMockRedisClient()
	buffer := NewRedisShortTermBuffer(client, 20)
	ctx := context.Background()
	session := kernel.NewSessionID()

	for i := 0; i < 25; i++ {
		require.NoError(t, buffer.Append(ctx, session, chat.NewUserMessage(fmt.Sprintf("msg-%d", i))))
	}

	messages, err := buffer.Read(ctx, session)
	require.NoError(t, err)
	require.Len(t, messages, 20)
	assert.Equal(t, "msg-5", messages[0].Text)
	assert.Equal(t, "msg-24", messages[19].Text)
}

func TestRedisBufferKeyLayout(t *testing.T) {
	client := newMockRedisClient()
	buffer := NewRedisShortTermBuffer(client, 20)
	ctx := context.Background()

	require.NoError(t, buffer.Append(ctx, kernel.SessionID("s1"), chat.NewUserMessage("hello")))

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Contains(t, client.lists, "chat:s1:messages")
}

func TestRedisBufferClear(t *testing.T) {
	client := newMockRedisClient()
	buffer := NewRedisShortTermBuffer(client, 20)
	ctx := context.Background()
	session := kernel.NewSessionID()

	require.NoError(t, buffer.Append(ctx, session, chat.NewUserMessage("hello")))
	require.NoError(t, buffer.Clear(ctx, session))

	messages, err := buffer.Read(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

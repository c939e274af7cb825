package session

import (
	"testing"

	"wordtrainer/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetAbsentReturnsIdle(t *testing.T) {
	store := NewMemoryStore()

	sess := store.Get(Key{UserID: 1, ChatID: 1})

	assert.Equal(t, domain.StateIdle, sess.State)
	assert.Nil(t, sess.Quiz)
}

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	key := Key{UserID: 1, ChatID: 1}

	quiz := &domain.Quiz{
		Source:  domain.SourceGlobal,
		WordID:  10,
		Ru:      "кошка",
		En:      "cat",
		Options: []string{"cat", "dog", "house", "table"},
	}
	store.Set(key, &domain.Session{State: domain.StateAwaitingAnswer, Quiz: quiz})

	sess := store.Get(key)

	assert.Equal(t, domain.StateAwaitingAnswer, sess.State)
	assert.Equal(t, quiz, sess.Quiz)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	key := Key{UserID: 1, ChatID: 1}

	store.Set(key, &domain.Session{State: domain.StateAwaitingAnswer})
	store.Clear(key)

	sess := store.Get(key)

	assert.Equal(t, domain.StateIdle, sess.State)
}

// One user talking in two chats holds two independent sessions
func TestMemoryStore_KeyedByConversation(t *testing.T) {
	store := NewMemoryStore()

	first := Key{UserID: 1, ChatID: 1}
	second := Key{UserID: 1, ChatID: 2}

	store.Set(first, &domain.Session{State: domain.StateAddingWord})

	assert.Equal(t, domain.StateAddingWord, store.Get(first).State)
	assert.Equal(t, domain.StateIdle, store.Get(second).State)
}

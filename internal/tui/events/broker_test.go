package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishToTypedAndWildcard(t *testing.T) {
	b := NewBroker()
	saved := b.Subscribe(SettingsSavedEvent)
	all := b.Subscribe()

	b.Publish(Event{Type: SettingsSavedEvent, Payload: SettingsSavedPayload{Path: "dmg_mult.cfg"}})
	b.Publish(Event{Type: SettingsResetEvent})

	require.Len(t, saved, 1)
	ev := <-saved
	assert.Equal(t, SettingsSavedEvent, ev.Type)
	assert.Equal(t, "dmg_mult.cfg", ev.Payload.(SettingsSavedPayload).Path)

	require.Len(t, all, 2)
	assert.Equal(t, SettingsSavedEvent, (<-all).Type)
	assert.Equal(t, SettingsResetEvent, (<-all).Type)
}

func TestBroker_FullSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(StatusMessageEvent)

	for i := 0; i < b.bufferSize+5; i++ {
		b.Publish(Event{Type: StatusMessageEvent})
	}
	assert.Len(t, ch, b.bufferSize)
}

func TestBroker_UnsubscribeClosesOnce(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(SettingsSavedEvent, SettingsResetEvent)

	assert.NotPanics(t, func() { b.Unsubscribe(ch) })
	_, open := <-ch
	assert.False(t, open)

	assert.NotPanics(t, func() { b.Publish(Event{Type: SettingsSavedEvent}) })
	assert.Empty(t, b.subscribers)
}

func TestBroker_Clear(t *testing.T) {
	b := NewBroker()
	a := b.Subscribe(SettingsSavedEvent, SettingsLoadedEvent)
	c := b.Subscribe()

	assert.NotPanics(t, b.Clear)
	_, openA := <-a
	_, openC := <-c
	assert.False(t, openA)
	assert.False(t, openC)
}

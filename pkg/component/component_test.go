package component

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formwidgets/pkg/head"
	"github.com/goliatone/go-formwidgets/pkg/markup"
)

type recordingBehavior struct {
	attached int
	tags     int
	renders  int
	err      error
}

func (b *recordingBehavior) OnAttach(*Component) error {
	b.attached++
	return b.err
}

func (b *recordingBehavior) OnComponentTag(_ *Component, tag *markup.Tag) error {
	b.tags++
	tag.SetAttr("data-renders", "seen")
	return nil
}

func (b *recordingBehavior) OnRenderResources(_ *Component, resp *head.Response) error {
	b.renders++
	resp.Render(head.CSS(head.Reference{URL: "/css/recording.css"}))
	return nil
}

type lateBehavior struct {
	attached bool
}

func (b *lateBehavior) OnAttach(*Component) error {
	b.attached = true
	return nil
}

type addingBehavior struct {
	late *lateBehavior
}

func (b *addingBehavior) OnAttach(c *Component) error {
	c.Add(b.late)
	return nil
}

func TestComponentLifecycle(t *testing.T) {
	behavior := &recordingBehavior{}
	c := New("birthday", WithBehaviors(behavior))
	assert.Equal(t, StateUnattached, c.State())

	require.NoError(t, c.Attach(markup.NewTag("input")))
	assert.Equal(t, StateInitialized, c.State())
	assert.Equal(t, 1, behavior.attached)

	resp := head.NewResponse()
	for i := 0; i < 2; i++ {
		tag, err := c.RenderTag()
		require.NoError(t, err)
		val, _ := tag.Attr("data-renders")
		assert.Equal(t, "seen", val)
		require.NoError(t, c.RenderResources(resp))
	}

	assert.Equal(t, StateRendered, c.State())
	assert.Equal(t, 1, behavior.attached)
	assert.Equal(t, 2, behavior.tags)
	assert.Equal(t, 2, behavior.renders)
	assert.Equal(t, []string{"/css/recording.css"}, resp.Stylesheets())
}

func TestComponentAttachTwiceFails(t *testing.T) {
	c := New("birthday")
	require.NoError(t, c.Attach(markup.NewTag("input")))

	err := c.Attach(markup.NewTag("input"))
	require.Error(t, err)
	assert.True(t, goerrors.Is(err, ErrAlreadyAttached))
}

func TestComponentRenderBeforeAttachFails(t *testing.T) {
	c := New("birthday")

	_, err := c.RenderTag()
	assert.True(t, goerrors.Is(err, ErrNotAttached))

	err = c.RenderResources(head.NewResponse())
	assert.True(t, goerrors.Is(err, ErrNotAttached))
}

func TestComponentAttachFailureKeepsUnattached(t *testing.T) {
	boom := goerrors.New("boom")
	c := New("birthday", WithBehaviors(&recordingBehavior{err: boom}))

	err := c.Attach(markup.NewTag("input"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateUnattached, c.State())
}

func TestComponentAttachVisitsBehaviorsAddedDuringAttach(t *testing.T) {
	late := &lateBehavior{}
	c := New("birthday", WithBehaviors(&addingBehavior{late: late}))

	require.NoError(t, c.Attach(markup.NewTag("input")))
	assert.True(t, late.attached)
}

func TestComponentMarkupID(t *testing.T) {
	c := New("user.birthday")
	require.NoError(t, c.Attach(markup.NewTag("input")))
	assert.Equal(t, "user_birthday", c.MarkupID())

	fromTag := New("birthday")
	require.NoError(t, fromTag.Attach(markup.NewTag("input", markup.Attr{Key: "id", Val: "dob"})))
	assert.Equal(t, "dob", fromTag.MarkupID())

	explicit := New("birthday", WithMarkupID("explicit"))
	require.NoError(t, explicit.Attach(markup.NewTag("input", markup.Attr{Key: "id", Val: "dob"})))
	assert.Equal(t, "explicit", explicit.MarkupID())
}

func TestComponentOutputMarkupID(t *testing.T) {
	c := New("birthday", WithOutputMarkupID(true))
	require.NoError(t, c.Attach(markup.NewTag("input")))

	tag, err := c.RenderTag()
	require.NoError(t, err)
	id, ok := tag.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "birthday", id)
}

func TestComponentRenderTagDoesNotMutateSource(t *testing.T) {
	c := New("birthday", WithBehaviors(&recordingBehavior{}))
	require.NoError(t, c.Attach(markup.NewTag("input")))

	_, err := c.RenderTag()
	require.NoError(t, err)

	_, ok := c.Tag().Attr("data-renders")
	assert.False(t, ok)
}

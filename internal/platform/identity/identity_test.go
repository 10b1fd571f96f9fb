package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_SetAndFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := From(c)
	assert.False(t, ok, "anonymous request should carry no identity")
	assert.Equal(t, uint(0), UserID(c))

	Set(c, Identity{UserID: 42, Nickname: "alice", SessionID: "sid"})

	id, ok := From(c)
	assert.True(t, ok)
	assert.Equal(t, "alice", id.Nickname)
	assert.Equal(t, uint(42), UserID(c))
}

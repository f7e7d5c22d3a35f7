package session

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName はセッションIDを運ぶクッキーの名前です。
const CookieName = "ca_session"

const sessionKeySID = "sid"

// Manager はクッキー上のセッションIDとストア上のレコードを対応付けます。
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager はセッションマネージャーを作成します。
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
	}
}

// MaxAgeSeconds はクッキーの MaxAge に利用する秒数を返します。
func (m *Manager) MaxAgeSeconds() int {
	return int(m.ttl.Seconds())
}

// Establish は新しいセッションを確立し、ユーザIDを紐付けます。
func (m *Manager) Establish(c *gin.Context, userID int64) error {
	sid := uuid.NewString()
	now := time.Now()
	record := &Record{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Put(c.Request.Context(), sid, record); err != nil {
		return err
	}

	session := sessions.Default(c)
	session.Set(sessionKeySID, sid)
	return session.Save()
}

// CurrentUserID は現在のリクエストに紐付くユーザIDを返します。
// セッションIDが無い・ストアに見つからない・取得に失敗した場合はいずれも未ログイン扱いです。
func (m *Manager) CurrentUserID(c *gin.Context) (int64, bool) {
	session := sessions.Default(c)
	sid, ok := session.Get(sessionKeySID).(string)
	if !ok || sid == "" {
		return 0, false
	}

	record, err := m.store.Get(c.Request.Context(), sid)
	if err != nil || record == nil {
		return 0, false
	}
	return record.UserID, true
}

// Clear はセッションを無条件に破棄します。未ログインの場合は何もしません。
func (m *Manager) Clear(c *gin.Context) {
	session := sessions.Default(c)
	if sid, ok := session.Get(sessionKeySID).(string); ok && sid != "" {
		_ = m.store.Delete(c.Request.Context(), sid)
	}
	session.Clear()
	_ = session.Save()
}

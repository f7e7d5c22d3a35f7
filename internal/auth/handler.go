package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/custom-auth/internal/form"
	"github.com/yourusername/custom-auth/internal/session"
	"github.com/yourusername/custom-auth/internal/user"
)

// MsgLoginFailure はログイン失敗時の共通メッセージです。
// どちらのフィールドが誤っているかは明かしません。
const MsgLoginFailure = "ユーザ名またはパスワードが間違っています。"

// MsgSignUpFailure は入力値以外の要因でユーザ登録が完了しなかったときの共通メッセージです。
const MsgSignUpFailure = "ユーザ登録に失敗しました。しばらくしてから再度お試しください。"

// Handler はログイン・ユーザ登録・トップ画面のハンドラー群です。
type Handler struct {
	backend         *Backend
	store           user.Store
	sessions        *session.Manager
	loginSuccessURL string
}

// NewHandler はハンドラーを作成します。
func NewHandler(backend *Backend, store user.Store, sessions *session.Manager, loginSuccessURL string) *Handler {
	return &Handler{
		backend:         backend,
		store:           store,
		sessions:        sessions,
		loginSuccessURL: loginSuccessURL,
	}
}

// Register はルーティングを設定します。
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
	router.GET("/signup", h.ShowSignUp)
	router.POST("/signup", h.SignUp)
	router.GET("/top", h.Top)
	router.GET("/logout", h.Logout)
	router.NoRoute(h.NotFound)
}

// ShowLogin はログイン画面を表示します。
func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"form": &form.LoginForm{},
	})
}

// Login はログインフォームの送信を処理します。
// 成功時はセッションを確立して遷移先へリダイレクトし、
// 失敗時は共通メッセージと共にログイン画面を再表示します。
func (h *Handler) Login(c *gin.Context) {
	f := &form.LoginForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	if !f.Validate() {
		h.renderLoginFailure(c, f)
		return
	}

	u, err := h.backend.Authenticate(c.Request.Context(), f.Username, f.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Printf("authenticate error: %v", err)
		}
		h.renderLoginFailure(c, f)
		return
	}

	if err := h.sessions.Establish(c, u.ID); err != nil {
		log.Printf("session establish error: %v", err)
		h.renderLoginFailure(c, f)
		return
	}

	c.Redirect(http.StatusFound, h.loginSuccessURL)
}

func (h *Handler) renderLoginFailure(c *gin.Context, f *form.LoginForm) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"form":       f,
		"loginError": MsgLoginFailure,
	})
}

// ShowSignUp はユーザ登録画面を表示します。
func (h *Handler) ShowSignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"form": &form.SignUpForm{},
	})
}

// SignUp はユーザ登録フォームの送信を処理します。
// 登録に成功するとログイン画面へリダイレクトします。
// 事前チェックをすり抜けた同時登録によるユニーク制約違反も重複エラーとして扱います。
func (h *Handler) SignUp(c *gin.Context) {
	f := &form.SignUpForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	ok, err := f.Validate(c.Request.Context(), h.store)
	if err != nil {
		log.Printf("signup validation error: %v", err)
		h.renderSignUpFailure(c, f)
		return
	}
	if !ok {
		h.renderSignUp(c, f)
		return
	}

	digest, err := HashPassword(f.Password)
	if err != nil {
		log.Printf("password hash error: %v", err)
		h.renderSignUpFailure(c, f)
		return
	}

	if _, err := h.store.Create(c.Request.Context(), f.Username, digest, false); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			// 事前チェック後に他のリクエストが同名で登録したケース
			// ストアのユニーク制約違反も事前チェックと同じ文言で返す
			f.AddError("username", form.MsgUsernameTaken)
			h.renderSignUp(c, f)
			return
		}
		log.Printf("user create error: %v", err)
		h.renderSignUpFailure(c, f)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) renderSignUp(c *gin.Context, f *form.SignUpForm) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"form": f,
	})
}

func (h *Handler) renderSignUpFailure(c *gin.Context, f *form.SignUpForm) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"form":        f,
		"signupError": MsgSignUpFailure,
	})
}

// Top はトップ画面を表示します。未ログインならログイン画面へリダイレクトし、
// 管理者かどうかで表示するトップ画面を切り替えます。
func (h *Handler) Top(c *gin.Context) {
	userID, ok := h.sessions.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	u, ok := h.backend.UserByID(c.Request.Context(), userID)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if u.IsAdmin {
		c.HTML(http.StatusOK, "top_admin.html", gin.H{"username": u.Username})
		return
	}
	c.HTML(http.StatusOK, "top.html", gin.H{"username": u.Username})
}

// Logout はセッションを無条件に破棄し、ログイン画面へリダイレクトします。
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}

// NotFound は未定義のパスに対して404画面を表示します。
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

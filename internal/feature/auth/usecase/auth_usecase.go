// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// maxPasswordBytes はbcryptが扱える入力の上限です。
	maxPasswordBytes = 72

	// Notifierが扱うテンプレート名
	TemplateVerifyEmail   = "verify-email"
	TemplateResetPassword = "reset-password"

	// dummyHash は未登録のメールアドレスでもbcrypt比較を行うためのダミーハッシュです。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーストアを抽象化します。
// Goの慣例に従い、インターフェースは提供側(adapters)ではなく利用側(usecase)で定義します。
type UserRepository interface {
	// Create は新しいユーザーを保存し、IDを割り当てます。
	// メールアドレスが既に使われている場合はdomain.ErrDuplicateEmailを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は該当ユーザーがいない場合domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は該当ユーザーがいない場合domain.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update は既存ユーザーの全フィールドを保存します。
	Update(ctx context.Context, user *entity.User) error

	// Delete はユーザーを削除します。削除対象が無い場合はdomain.ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) error

	// List は全ユーザーをID順で返します。
	List(ctx context.Context) ([]entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と照合を行います。
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// TokenIssuer はセッショントークンに署名します。
type TokenIssuer interface {
	GenerateToken(userID uint, role entity.Role) (string, error)
}

// SecretGenerator は検証・リセット用のワンタイムトークンを生成します。
type SecretGenerator interface {
	Generate() (string, error)
}

// Notifier はテンプレートメールを1件のアドレスに送信します。
type Notifier interface {
	Send(ctx context.Context, to, template string, data map[string]any) error
}

// Config は認証フローの設定を保持します。
type Config struct {
	// Domain はメール内リンクの生成に使う公開ベースURLです。
	Domain string
	// VerificationTokenTTL は検証リンクの有効期間です。0の場合は失効しません。
	VerificationTokenTTL time.Duration
	// ResetPasswordTokenTTL はリセットリンクの有効期間です。0の場合は失効しません。
	ResetPasswordTokenTTL time.Duration
}

// LoginResult はセッショントークン、またはメール検証待ちのいずれかを表します。
type LoginResult struct {
	AccessToken         string
	PendingVerification bool
}

// RegisterInput はユーザー登録時の入力項目です。
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// authUsecase はユーザー登録、ログイン、メール検証、パスワードリセットを実装します。
type authUsecase struct {
	users   UserRepository
	hasher  PasswordHasher
	tokens  TokenIssuer
	secrets SecretGenerator
	mailer  Notifier
	cfg     Config
	now     func() time.Time
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer,
	secrets SecretGenerator, mailer Notifier, cfg Config) *authUsecase {
	return &authUsecase{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		secrets: secrets,
		mailer:  mailer,
		cfg:     cfg,
		now:     time.Now,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes long", domain.ErrValidation, maxPasswordBytes)
	}
	return nil
}

// Register は未検証のユーザーを作成し、検証リンクをメールで送信します。
// 登録時点ではログインさせません。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) error {
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if err := validatePassword(in.Password); err != nil {
		return err
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	token, err := u.secrets.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &entity.User{
		Email:    in.Email,
		Username: in.Username,
		Password: hashed,
		Role:     entity.RoleUser,
	}
	user.SetVerificationToken(token, u.now(), u.cfg.VerificationTokenTTL)

	// 同時登録との競合はユニークインデックスで解決する
	if err := u.users.Create(ctx, user); err != nil {
		return err
	}

	return u.sendVerificationEmail(ctx, user)
}

// Login はユーザーを認証し、検証済みであればセッショントークンを返します。
// 未検証のユーザーには検証メールを再送し、トークンの代わりに検証待ちの結果を返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return LoginResult{}, err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	matched := u.hasher.Verify(password, passwordHash)

	if err != nil || !matched {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		if !user.HasPendingVerification() || user.VerificationTokenExpired(u.now()) {
			token, err := u.secrets.Generate()
			if err != nil {
				return LoginResult{}, fmt.Errorf("failed to generate verification token: %w", err)
			}
			user.SetVerificationToken(token, u.now(), u.cfg.VerificationTokenTTL)
			if err := u.users.Update(ctx, user); err != nil {
				return LoginResult{}, err
			}
		}
		if err := u.sendVerificationEmail(ctx, user); err != nil {
			return LoginResult{}, err
		}
		return LoginResult{PendingVerification: true}, nil
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return LoginResult{AccessToken: token}, nil
}

// HashPassword はプロフィール更新用にパスワードをハッシュ化します。
func (u *authUsecase) HashPassword(password string) (string, error) {
	return u.hasher.Hash(password)
}

// VerifyPassword は平文とハッシュを照合します。
func (u *authUsecase) VerifyPassword(password, hashed string) bool {
	return u.hasher.Verify(password, hashed)
}

func (u *authUsecase) sendVerificationEmail(ctx context.Context, user *entity.User) error {
	link := fmt.Sprintf("%s/api/users/verify-email/%d/%s", u.cfg.Domain, user.ID, *user.VerificationToken)
	if err := u.mailer.Send(ctx, user.Email, TemplateVerifyEmail, map[string]any{"link": link}); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailure, err)
	}
	return nil
}

// tokensEqual は保存済みのワンタイムトークンと入力値を定数時間で比較します。
func tokensEqual(stored *string, supplied string) bool {
	if stored == nil || *stored == "" || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*stored), []byte(supplied)) == 1
}

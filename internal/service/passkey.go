package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// credentialParameters are the public key algorithms offered at registration.
var credentialParameters = webauthn.CredentialParametersDefault()

type passkeyProvider interface {
	BeginRegistration(user webauthn.User, opts ...webauthn.RegistrationOption) (*protocol.CredentialCreation, *webauthn.SessionData, error)
	CreateCredential(user webauthn.User, session webauthn.SessionData, response *protocol.ParsedCredentialCreationData) (*webauthn.Credential, error)
	BeginDiscoverableLogin(opts ...webauthn.LoginOption) (*protocol.CredentialAssertion, *webauthn.SessionData, error)
	ValidateLogin(user webauthn.User, session webauthn.SessionData, response *protocol.ParsedCredentialAssertionData) (*webauthn.Credential, error)
}

type passkeyParser interface {
	ParseCredentialCreationResponseBytes(data []byte) (*protocol.ParsedCredentialCreationData, error)
	ParseCredentialRequestResponseBytes(data []byte) (*protocol.ParsedCredentialAssertionData, error)
}

type defaultPasskeyParser struct{}

func (defaultPasskeyParser) ParseCredentialCreationResponseBytes(data []byte) (*protocol.ParsedCredentialCreationData, error) {
	return protocol.ParseCredentialCreationResponseBytes(data)
}

func (defaultPasskeyParser) ParseCredentialRequestResponseBytes(data []byte) (*protocol.ParsedCredentialAssertionData, error) {
	return protocol.ParseCredentialRequestResponseBytes(data)
}

// Passkey implements WebAuthn registration and authentication on top of the
// credential, challenge and user stores.
type Passkey struct {
	userStore       model.UserStore
	credentialStore model.CredentialStore
	challengeStore  model.ChallengeStore
	provider        passkeyProvider
	parser          passkeyParser
	rpID            string
	logger          *logger.Logger
}

func NewPasskey(
	userStore model.UserStore,
	credentialStore model.CredentialStore,
	challengeStore model.ChallengeStore,
	webAuthn *webauthn.WebAuthn,
	logger *logger.Logger,
) *Passkey {
	p := &Passkey{
		userStore:       userStore,
		credentialStore: credentialStore,
		challengeStore:  challengeStore,
		parser:          defaultPasskeyParser{},
		logger:          logger,
	}
	if webAuthn != nil {
		p.provider = webAuthn
		p.rpID = webAuthn.Config.RPID
	}
	return p
}

// StoreChallenge persists a challenge for the attempt.
func (p *Passkey) StoreChallenge(ctx context.Context, attemptID, challenge string) error {
	if err := p.challengeStore.Store(ctx, attemptID, challenge); err != nil {
		p.logger.Error("Passkey service: failed to store challenge",
			"attempt_id", attemptID,
			"error", err.Error())
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	return nil
}

// GetChallenge consumes the challenge of the attempt.
func (p *Passkey) GetChallenge(ctx context.Context, attemptID string) (string, error) {
	challenge, err := p.challengeStore.GetAndDelete(ctx, attemptID)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierror.NewErrChallengeNotFound()
	}
	if err != nil {
		p.logger.Error("Passkey service: failed to get challenge",
			"attempt_id", attemptID,
			"error", err.Error())
		return "", fmt.Errorf("failed to get challenge: %w", err)
	}
	return challenge, nil
}

// AllowCredentials lists the credentials registered by the user with email.
func (p *Passkey) AllowCredentials(ctx context.Context, email string) ([]model.Credential, error) {
	user, err := p.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return nil, apierror.NewErrUserNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	credentials, err := p.credentialStore.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find credentials: %w", err)
	}
	return credentials, nil
}

// GetCredential resolves a credential by its base64url id.
func (p *Passkey) GetCredential(ctx context.Context, credentialID string) (model.Credential, error) {
	credential, err := p.credentialStore.FindByID(ctx, credentialID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Credential{}, apierror.NewErrCredentialNotFound()
	}
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to find credential: %w", err)
	}
	return credential, nil
}

// OnAuthenticated resolves the owner of a verified credential, records the
// activity and returns the user to put into the session.
func (p *Passkey) OnAuthenticated(ctx context.Context, credential model.Credential) (model.SessionUser, error) {
	user, err := p.userStore.GetByID(ctx, credential.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionUser{}, apierror.NewErrUserNotFound()
	}
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if user.Banned {
		return model.SessionUser{}, apierror.NewErrBanned(deref(user.BannedReason))
	}

	user, err = p.userStore.UpdateLastActive(ctx, user.ID)
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to update last active: %w", err)
	}

	p.logger.Info("Passkey service: user authenticated",
		"user_id", user.ID,
		"credential_id", credential.ID)

	return model.Sanitize(user), nil
}

// ValidateUser checks the claimed identity against the current session.
// session is nil for anonymous requests.
func (p *Passkey) ValidateUser(session *model.SessionUser, claimed model.RegisterUser) (model.RegisterUser, error) {
	if session != nil && session.Email != "" && session.Email != claimed.UserName {
		return model.RegisterUser{}, apierror.NewErrEmailMismatch()
	}

	addr, err := mail.ParseAddress(claimed.UserName)
	if err != nil || addr.Address != claimed.UserName {
		return model.RegisterUser{}, apierror.NewErrInvalidInput("userName must be a valid email")
	}

	return model.RegisterUser{
		UserName:    claimed.UserName,
		DisplayName: strings.TrimSpace(claimed.DisplayName),
	}, nil
}

// BeginAuthentication starts a login ceremony. With an email the browser is
// restricted to that user's credentials, otherwise any discoverable passkey
// of the relying party is accepted.
func (p *Passkey) BeginAuthentication(ctx context.Context, email string) (model.Ceremony, error) {
	var opts []webauthn.LoginOption
	if email != "" {
		credentials, err := p.AllowCredentials(ctx, email)
		if err != nil {
			return model.Ceremony{}, err
		}
		descriptors, err := descriptorsOf(credentials)
		if err != nil {
			return model.Ceremony{}, err
		}
		opts = append(opts, webauthn.WithAllowedCredentials(descriptors))
	}

	assertion, session, err := p.provider.BeginDiscoverableLogin(opts...)
	if err != nil {
		p.logger.Error("Passkey service: failed to begin login",
			"error", err.Error())
		return model.Ceremony{}, fmt.Errorf("failed to begin login: %w", err)
	}

	attemptID := uuid.NewString()
	if err := p.StoreChallenge(ctx, attemptID, session.Challenge); err != nil {
		return model.Ceremony{}, err
	}

	return model.Ceremony{AttemptID: attemptID, RequestOptions: &assertion.Response}, nil
}

// FinishAuthentication verifies an assertion and returns the session user.
func (p *Passkey) FinishAuthentication(ctx context.Context, attemptID string, response json.RawMessage) (model.SessionUser, error) {
	challenge, err := p.GetChallenge(ctx, attemptID)
	if err != nil {
		return model.SessionUser{}, err
	}

	parsed, err := p.parser.ParseCredentialRequestResponseBytes(response)
	if err != nil {
		return model.SessionUser{}, apierror.NewErrInvalidInput("Invalid authentication response")
	}

	credential, err := p.GetCredential(ctx, base64.RawURLEncoding.EncodeToString(parsed.RawID))
	if err != nil {
		return model.SessionUser{}, err
	}

	owned, err := p.credentialStore.FindByUserID(ctx, credential.UserID)
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to find credentials: %w", err)
	}
	user, err := newPasskeyUser(credential.UserID, "", "", owned)
	if err != nil {
		return model.SessionUser{}, err
	}

	validated, err := p.provider.ValidateLogin(user, p.sessionData(challenge, user), parsed)
	if err != nil {
		p.logger.Info("Passkey service: assertion rejected",
			"credential_id", credential.ID,
			"error", err.Error())
		return model.SessionUser{}, apierror.New(http.StatusUnauthorized, "Passkey verification failed")
	}
	if validated.Authenticator.CloneWarning {
		p.logger.Warn("Passkey service: signature counter went backwards",
			"credential_id", credential.ID)
		return model.SessionUser{}, apierror.New(http.StatusUnauthorized, "Passkey verification failed")
	}

	if err := p.credentialStore.UpdateCounter(ctx, credential.ID, validated.Authenticator.SignCount, validated.Flags.BackupState); err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to update credential counter: %w", err)
	}

	return p.OnAuthenticated(ctx, credential)
}

// BeginRegistration starts a registration ceremony for the session user, or
// for a new account when session is nil.
func (p *Passkey) BeginRegistration(ctx context.Context, session *model.SessionUser, claimed model.RegisterUser) (model.Ceremony, error) {
	claimed, err := p.ValidateUser(session, claimed)
	if err != nil {
		return model.Ceremony{}, err
	}

	attemptID := uuid.NewString()
	user, err := p.registrant(ctx, session, attemptID, claimed)
	if err != nil {
		return model.Ceremony{}, err
	}
	if session == nil {
		if _, err := p.userStore.GetByEmail(ctx, claimed.UserName); err == nil {
			return model.Ceremony{}, apierror.NewErrEmailIsTaken(claimed.UserName)
		} else if !errors.Is(err, model.ErrNotFound) {
			return model.Ceremony{}, fmt.Errorf("failed to get user by email: %w", err)
		}
	}

	opts := []webauthn.RegistrationOption{
		webauthn.WithResidentKeyRequirement(protocol.ResidentKeyRequirementRequired),
		webauthn.WithCredentialParameters(credentialParameters),
	}
	if len(user.credentials) > 0 {
		opts = append(opts, webauthn.WithExclusions(webauthn.Credentials(user.credentials).CredentialDescriptors()))
	}

	creation, sessionData, err := p.provider.BeginRegistration(user, opts...)
	if err != nil {
		p.logger.Error("Passkey service: failed to begin registration",
			"user_name", claimed.UserName,
			"error", err.Error())
		return model.Ceremony{}, fmt.Errorf("failed to begin registration: %w", err)
	}

	if err := p.StoreChallenge(ctx, attemptID, sessionData.Challenge); err != nil {
		return model.Ceremony{}, err
	}

	return model.Ceremony{AttemptID: attemptID, CreationOptions: &creation.Response}, nil
}

// FinishRegistration verifies an attestation and stores the new credential.
// Anonymous registrations create the account, whose id is the attempt id that
// served as the WebAuthn user handle.
func (p *Passkey) FinishRegistration(ctx context.Context, session *model.SessionUser, attemptID string, claimed model.RegisterUser, response json.RawMessage) (model.SessionUser, error) {
	claimed, err := p.ValidateUser(session, claimed)
	if err != nil {
		return model.SessionUser{}, err
	}

	challenge, err := p.GetChallenge(ctx, attemptID)
	if err != nil {
		return model.SessionUser{}, err
	}

	parsed, err := p.parser.ParseCredentialCreationResponseBytes(response)
	if err != nil {
		return model.SessionUser{}, apierror.NewErrInvalidInput("Invalid registration response")
	}

	user, err := p.registrant(ctx, session, attemptID, claimed)
	if err != nil {
		return model.SessionUser{}, err
	}

	created, err := p.provider.CreateCredential(user, p.sessionData(challenge, user), parsed)
	if err != nil {
		p.logger.Info("Passkey service: attestation rejected",
			"user_name", claimed.UserName,
			"error", err.Error())
		return model.SessionUser{}, apierror.NewErrInvalidInput("Passkey verification failed")
	}

	result := model.SessionUser{}
	if session != nil {
		result = *session
	} else {
		newUser, err := p.userStore.Create(ctx, model.NewUser{
			ID:    user.id,
			Email: claimed.UserName,
			Name:  user.WebAuthnDisplayName(),
		})
		if errors.Is(err, model.ErrEmailTaken) {
			return model.SessionUser{}, apierror.NewErrEmailIsTaken(claimed.UserName)
		}
		if err != nil {
			return model.SessionUser{}, fmt.Errorf("failed to create user: %w", err)
		}
		result = model.Sanitize(newUser)
	}

	credential := credentialFrom(user.id, user.WebAuthnDisplayName(), created)
	if _, err := p.credentialStore.Create(ctx, credential); err != nil {
		if session == nil {
			p.removeUser(ctx, user.id)
		}
		if errors.Is(err, model.ErrConflict) {
			return model.SessionUser{}, apierror.New(http.StatusConflict, "Passkey is already registered")
		}
		p.logger.Error("Passkey service: failed to create credential",
			"user_id", user.id,
			"error", err.Error())
		return model.SessionUser{}, fmt.Errorf("failed to create credential: %w", err)
	}

	p.logger.Info("Passkey service: passkey registered",
		"user_id", user.id,
		"credential_id", credential.ID)

	return result, nil
}

// removeUser deletes an account created by an anonymous registration whose
// credential could not be stored.
func (p *Passkey) removeUser(ctx context.Context, userID uuid.UUID) {
	if _, err := p.userStore.Delete(ctx, userID); err != nil {
		p.logger.Error("Passkey service: failed to remove user without passkey",
			"user_id", userID,
			"error", err.Error())
	}
}

// ListCredentials returns the passkeys of a user.
func (p *Passkey) ListCredentials(ctx context.Context, userID uuid.UUID) ([]model.Credential, error) {
	credentials, err := p.credentialStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find credentials: %w", err)
	}
	return credentials, nil
}

// DeleteCredential removes a passkey owned by userID. Ids of other users'
// credentials are ignored.
func (p *Passkey) DeleteCredential(ctx context.Context, userID uuid.UUID, credentialID string) error {
	if credentialID == "" {
		return apierror.NewErrInvalidInput("id is required")
	}
	if err := p.credentialStore.Delete(ctx, userID, credentialID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

// registrant builds the WebAuthn user a credential is registered for.
func (p *Passkey) registrant(ctx context.Context, session *model.SessionUser, attemptID string, claimed model.RegisterUser) (*passkeyUser, error) {
	displayName := claimed.DisplayName
	if displayName == "" {
		displayName = claimed.UserName
	}

	if session == nil {
		id, err := uuid.Parse(attemptID)
		if err != nil {
			return nil, apierror.NewErrChallengeNotFound()
		}
		return newPasskeyUser(id, claimed.UserName, displayName, nil)
	}

	credentials, err := p.credentialStore.FindByUserID(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find credentials: %w", err)
	}
	return newPasskeyUser(session.ID, claimed.UserName, displayName, credentials)
}

// sessionData rebuilds the ceremony state from the consumed challenge. Expiry
// is enforced by the challenge store. CredParams must match what
// BeginRegistration offered or every attestation is rejected.
func (p *Passkey) sessionData(challenge string, user *passkeyUser) webauthn.SessionData {
	return webauthn.SessionData{
		Challenge:        challenge,
		RelyingPartyID:   p.rpID,
		UserID:           user.WebAuthnID(),
		UserVerification: protocol.VerificationPreferred,
		CredParams:       credentialParameters,
	}
}

type passkeyUser struct {
	id          uuid.UUID
	name        string
	displayName string
	credentials []webauthn.Credential
}

func newPasskeyUser(id uuid.UUID, name, displayName string, stored []model.Credential) (*passkeyUser, error) {
	credentials := make([]webauthn.Credential, 0, len(stored))
	for _, c := range stored {
		credential, err := webauthnCredential(c)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}
	return &passkeyUser{id: id, name: name, displayName: displayName, credentials: credentials}, nil
}

func (u *passkeyUser) WebAuthnID() []byte {
	return []byte(u.id.String())
}

func (u *passkeyUser) WebAuthnName() string {
	return u.name
}

func (u *passkeyUser) WebAuthnDisplayName() string {
	return u.displayName
}

func (u *passkeyUser) WebAuthnIcon() string {
	return ""
}

func (u *passkeyUser) WebAuthnCredentials() []webauthn.Credential {
	return u.credentials
}

func webauthnCredential(c model.Credential) (webauthn.Credential, error) {
	id, err := base64.RawURLEncoding.DecodeString(c.ID)
	if err != nil {
		return webauthn.Credential{}, fmt.Errorf("failed to decode credential id %s: %w", c.ID, err)
	}
	publicKey, err := base64.RawURLEncoding.DecodeString(c.PublicKey)
	if err != nil {
		return webauthn.Credential{}, fmt.Errorf("failed to decode public key of %s: %w", c.ID, err)
	}

	transports := make([]protocol.AuthenticatorTransport, 0, len(c.Transports))
	for _, t := range c.Transports {
		transports = append(transports, protocol.AuthenticatorTransport(t))
	}

	return webauthn.Credential{
		ID:              id,
		PublicKey:       publicKey,
		AttestationType: c.AttestationType,
		Transport:       transports,
		Flags: webauthn.CredentialFlags{
			UserPresent:    true,
			BackupEligible: c.BackupEligible,
			BackupState:    c.BackedUp,
		},
		Authenticator: webauthn.Authenticator{
			SignCount: c.Counter,
		},
	}, nil
}

func credentialFrom(userID uuid.UUID, name string, c *webauthn.Credential) model.Credential {
	transports := make([]string, 0, len(c.Transport))
	for _, t := range c.Transport {
		transports = append(transports, string(t))
	}

	return model.Credential{
		ID:              base64.RawURLEncoding.EncodeToString(c.ID),
		UserID:          userID,
		Name:            name,
		PublicKey:       base64.RawURLEncoding.EncodeToString(c.PublicKey),
		Counter:         c.Authenticator.SignCount,
		Transports:      transports,
		BackedUp:        c.Flags.BackupState,
		BackupEligible:  c.Flags.BackupEligible,
		AttestationType: c.AttestationType,
	}
}

func descriptorsOf(stored []model.Credential) ([]protocol.CredentialDescriptor, error) {
	credentials := make(webauthn.Credentials, 0, len(stored))
	for _, c := range stored {
		credential, err := webauthnCredential(c)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}
	return credentials.CredentialDescriptors(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

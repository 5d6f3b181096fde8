package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/microcosm-cc/bluemonday"

	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/geo"
	"github.com/schoolhub/portal/internal/pkg/inflight"
	"github.com/schoolhub/portal/internal/session"
)

const (
	// 9 or 10 digits, optionally split by spaces or dashes, leading + allowed.
	homePhoneRegexPattern = `^(?=(?:\D*\d){9,10}\D*$)\+?[0-9][0-9 \-]*$`
	// Digits with single dashes, slashes or spaces between them.
	houseRegNumberRegexPattern = `^(?!.*[\- /]{2})[0-9][0-9\- /]{0,19}$`
)

var (
	homePhoneExp      = regexp2.MustCompile(homePhoneRegexPattern, regexp2.None)
	houseRegNumberExp = regexp2.MustCompile(houseRegNumberRegexPattern, regexp2.None)
)

type AddressRepository interface {
	Create(ctx context.Context, token string, draft domain.AddressDraft) (string, error)
}

// AddressInput is the address form as submitted: the free-text fields and
// the ids chosen in the three selects.
type AddressInput struct {
	FreeText       string
	ProvinceID     int
	DistrictID     int
	SubdistrictID  int
	HomePhone      string
	HouseRegNumber string
	Type           domain.AddressType
}

type AddressService struct {
	repo      AddressRepository
	geo       *GeoService
	guard     inflight.Guard
	sanitizer *bluemonday.Policy
}

func NewAddressService(repo AddressRepository, geo *GeoService, guard inflight.Guard) *AddressService {
	return &AddressService{
		repo:      repo,
		geo:       geo,
		guard:     guard,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// SubmitResult carries the server message and the form after its reset.
type SubmitResult struct {
	Message string
	Form    geo.View
}

// Submit validates the form, derives the location names and postal code
// from the selection, and sends the address with the session token.
// Nothing is sent when the form is incomplete or there is no session.
func (s *AddressService) Submit(ctx context.Context, in AddressInput, store session.Store) (SubmitResult, error) {
	draft := domain.NewAddressDraft()
	draft.FreeText = strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(in.FreeText)))
	draft.HomePhone = strings.TrimSpace(in.HomePhone)
	draft.HouseRegNumber = strings.TrimSpace(in.HouseRegNumber)
	if in.Type != "" {
		draft.Type = in.Type
	}

	if draft.FreeText == "" || in.ProvinceID == geo.Placeholder ||
		in.DistrictID == geo.Placeholder || in.SubdistrictID == geo.Placeholder {
		return SubmitResult{}, ErrAddressIncomplete
	}

	selector, err := s.geo.Selector(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	selector.Replay(in.ProvinceID, in.DistrictID, in.SubdistrictID)
	draft = selector.Apply(draft)

	if err = ValidateDraft(draft); err != nil {
		return SubmitResult{}, err
	}

	token := activeToken(store)
	if token == "" {
		return SubmitResult{}, ErrNotLoggedIn
	}

	if err = ValidateFormats(draft); err != nil {
		return SubmitResult{}, err
	}

	release, ok, err := s.guard.Acquire(ctx, inflight.Key("address", token))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("s.guard.Acquire -> %w", err)
	}
	if !ok {
		return SubmitResult{}, ErrInFlight
	}
	defer release()

	msg, err := s.repo.Create(ctx, token, draft)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	selector.Reset()

	return SubmitResult{
		Message: msg,
		Form:    selector.View(),
	}, nil
}

// ValidateDraft checks that the fields the school API requires are set.
func ValidateDraft(d domain.AddressDraft) error {
	err := validation.ValidateStruct(
		&d,
		validation.Field(&d.FreeText, validation.Required),
		validation.Field(&d.Subdistrict, validation.Required),
		validation.Field(&d.District, validation.Required),
		validation.Field(&d.Province, validation.Required),
	)
	if err != nil {
		return ErrAddressIncomplete
	}

	return nil
}

// ValidateFormats checks the optional fields that were filled in. The
// returned error wraps ErrInvalidFormat and the per-field validation.Errors.
func ValidateFormats(d domain.AddressDraft) error {
	err := validation.ValidateStruct(
		&d,
		validation.Field(&d.HomePhone, validation.By(matches(homePhoneExp, errInvalidHomePhone))),
		validation.Field(&d.HouseRegNumber, validation.By(matches(houseRegNumberExp, errInvalidHouseRegNumber))),
		validation.Field(&d.Type, validation.In(domain.AddressCurrent, domain.AddressPermanent).Error(errInvalidAddressType.Error())),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return nil
}

func matches(exp *regexp2.Regexp, errInvalid error) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		ok, err := exp.MatchString(s)
		if err != nil || !ok {
			return errInvalid
		}

		return nil
	}
}

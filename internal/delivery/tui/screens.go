package tui

import (
	"errors"
	"fmt"
	"strconv"

	"medicompare/internal/domain/entity"
	"medicompare/internal/usecase"
	"medicompare/pkg/validator"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

const (
	detectLocation = "__detect__"
	customBudget   = "custom"

	choiceBack      = "back"
	choiceNewSearch = "search"
	choiceQuit      = "quit"

	newSearchIndex = -1
)

func validatePhone(s string) error {
	if s == "" {
		return errors.New(usecase.MsgPhoneRequired)
	}
	if !validator.ValidatePhoneFormat(s) {
		return errors.New(usecase.MsgInvalidPhone)
	}
	return nil
}

func validateOTP(s string) error {
	if len(s) != usecase.OTPLength {
		return errors.New(usecase.MsgOTPIncomplete)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return errors.New(usecase.MsgOTPIncomplete)
		}
	}
	return nil
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("must be a number")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func (w *Wizard) newPhoneForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("phone").
				Title("Mobile Number").
				Description("+91, 10 digits starting with 6-9").
				Placeholder("9876543210").
				CharLimit(validator.PhoneLength).
				Value(&w.phone).
				Validate(validatePhone),
		),
	).WithShowHelp(false).WithShowErrors(true)
}

func (w *Wizard) newOTPForm() *huh.Form {
	description := fmt.Sprintf("Sent to +91 %s", w.phone)
	if w.challenge != nil {
		description += " · " + w.challenge.Hint
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("otp").
				Title("Enter OTP").
				Description(description).
				CharLimit(usecase.OTPLength).
				Value(&w.otp).
				Validate(validateOTP),
		),
	).WithShowHelp(false).WithShowErrors(true)
}

func (w *Wizard) newLocationForm() *huh.Form {
	options := []huh.Option[string]{huh.NewOption("Detect my location", detectLocation)}
	for _, city := range w.deps.Catalog.Cities(w.ctx) {
		options = append(options, huh.NewOption(city, city))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("city").
				Title("Select your city").
				Options(options...).
				Value(&w.cityChoice),
		),
	).WithShowHelp(false).WithShowErrors(true)
}

func (w *Wizard) newSearchForm() *huh.Form {
	var treatments []huh.Option[string]
	for _, name := range w.deps.Catalog.TreatmentNames(w.ctx) {
		treatments = append(treatments, huh.NewOption(name, name))
	}

	var budgets []huh.Option[string]
	for i, preset := range w.deps.Catalog.BudgetPresets(w.ctx) {
		budgets = append(budgets, huh.NewOption(preset.Label, strconv.Itoa(i)))
	}
	budgets = append(budgets, huh.NewOption("Custom range", customBudget))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("treatment").
				Title("Treatment").
				Options(treatments...).
				Height(8).
				Value(&w.treatment),
			huh.NewSelect[string]().
				Key("budget").
				Title("Budget").
				Options(budgets...).
				Value(&w.budgetChoice),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("min_budget").
				Title("Min Budget (₹)").
				Value(&w.customMin).
				Validate(validateAmount),
			huh.NewInput().
				Key("max_budget").
				Title("Max Budget (₹)").
				Value(&w.customMax).
				Validate(validateAmount),
		).WithHideFunc(func() bool {
			return w.budgetChoice != customBudget
		}),
	).WithShowHelp(false).WithShowErrors(true)
}

func (w *Wizard) newResultsForm() *huh.Form {
	var options []huh.Option[int]
	for i, r := range w.results {
		options = append(options, huh.NewOption(resultLabel(r), i))
	}
	options = append(options, huh.NewOption("Modify search", newSearchIndex))

	title := fmt.Sprintf("%d hospitals found", len(w.results))
	if len(w.results) == 0 {
		title = "No hospitals match your search. Try adjusting your budget range or treatment type."
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("result").
				Title(title).
				Options(options...).
				Value(&w.resultChoice),
		),
	).WithShowHelp(false)
}

func (w *Wizard) newDetailForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("next").
				Title("What next?").
				Options(
					huh.NewOption("Back to hospital list", choiceBack),
					huh.NewOption("New search", choiceNewSearch),
					huh.NewOption("Quit", choiceQuit),
				).
				Value(&w.detailChoice),
		),
	).WithShowHelp(false)
}

// selectedBudget turns the budget choice into a range. Custom amounts were validated by the form.
func (w *Wizard) selectedBudget() entity.BudgetRange {
	if w.budgetChoice == customBudget {
		lo, _ := decimal.NewFromString(w.customMin)
		hi, _ := decimal.NewFromString(w.customMax)
		return entity.BudgetRange{Min: lo, Max: hi}
	}

	presets := w.deps.Catalog.BudgetPresets(w.ctx)
	i, err := strconv.Atoi(w.budgetChoice)
	if err != nil || i < 0 || i >= len(presets) {
		return entity.DefaultBudget()
	}
	return presets[i].Range
}

package domain

// Catalog keys.
const (
	KeySkillName        = "SKILL_NAME"
	KeyGetFactMessage   = "GET_FACT_MESSAGE"
	KeyHelpMessage      = "HELP_MESSAGE"
	KeyHelpReprompt     = "HELP_REPROMPT"
	KeyFallbackMessage  = "FALLBACK_MESSAGE"
	KeyFallbackReprompt = "FALLBACK_REPROMPT"
	KeyErrorMessage     = "ERROR_MESSAGE"
	KeyStopMessage      = "STOP_MESSAGE"
	KeyFacts            = "FACTS"
)

// RequiredKeys must resolve for every supported locale.
var RequiredKeys = []string{KeySkillName, KeyHelpMessage, KeyErrorMessage}

// BaseKeys is the full key set a base-language bundle must define.
var BaseKeys = []string{
	KeySkillName,
	KeyGetFactMessage,
	KeyHelpMessage,
	KeyHelpReprompt,
	KeyFallbackMessage,
	KeyFallbackReprompt,
	KeyErrorMessage,
	KeyStopMessage,
	KeyFacts,
}

// Intent names sent by the platform.
const (
	IntentGetNewFact = "GetNewFactIntent"
	IntentHelp       = "AMAZON.HelpIntent"
	IntentFallback   = "AMAZON.FallbackIntent"
	IntentCancel     = "AMAZON.CancelIntent"
	IntentStop       = "AMAZON.StopIntent"
)

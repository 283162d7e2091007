package gmt

// Names of the GMT enum constants the wrapper resolves at call time.
const (
	PadDefault      = "GMT_PAD_DEFAULT"
	SessionExternal = "GMT_SESSION_EXTERNAL"
	ModuleCmd       = "GMT_MODULE_CMD"
)

// enumNotFound is returned by GMT_Get_Enum for unknown names.
const enumNotFound = -99999

// Native entry point names.
const (
	fnCreateSession  = "GMT_Create_Session"
	fnGetEnum        = "GMT_Get_Enum"
	fnCallModule     = "GMT_Call_Module"
	fnDestroySession = "GMT_Destroy_Session"
	fnGetVersion     = "GMT_Get_Version"
)

// requiredSymbols must all resolve for a library to be usable. Order is the
// order of validation.
var requiredSymbols = [...]string{
	fnCreateSession,
	fnGetEnum,
	fnCallModule,
	fnDestroySession,
}

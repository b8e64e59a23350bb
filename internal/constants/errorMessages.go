package constants

const (
	MsgRoutesFetched    = "Routes fetched"
	MsgAirportsFetched  = "Airports fetched"
	MsgFlightsFetched   = "Flights fetched"
	MsgInvalidQuery     = "Invalid search query"
	MsgUnknownAirport   = "Unknown airport code"
	MsgCatalogCorrupted = "Flight catalog returned inconsistent data"
	MsgSearchFailed     = "Route search failed"
)

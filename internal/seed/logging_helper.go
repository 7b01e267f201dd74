package seed

func itemFields(collection, title string) []interface{} {
	return []interface{}{
		"collection", collection,
		"title", title,
	}
}

func (s *Seeder) logItem(level string, msg string, r ItemResult, fields ...interface{}) {
	all := append(itemFields(r.Collection, r.Title), fields...)
	switch level {
	case "debug":
		s.logger.Debugw(msg, all...)
	case "warn":
		s.logger.Warnw(msg, all...)
	case "error":
		s.logger.Errorw(msg, all...)
	default:
		s.logger.Infow(msg, all...)
	}
}

func (s *Seeder) logError(r ItemResult, err error, msg string, fields ...interface{}) {
	s.logItem("error", msg, r, append(fields, "error", err)...)
}

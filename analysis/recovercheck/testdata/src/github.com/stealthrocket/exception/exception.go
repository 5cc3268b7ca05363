package exception

func Signal(v any) {}

func Propagating(v any) bool { return false }

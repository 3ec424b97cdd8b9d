package errors

import (
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Violation reasons ride in ErrorInfo metadata; BadRequest only has descriptions.
const violationReasonMetadataPrefix = "_errors.violation_reason."

func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	metadata := cloneDetails(e.Details)
	for _, v := range e.Violations {
		if v.Field == "" || v.Reason == "" {
			continue
		}
		if metadata == nil {
			metadata = map[string]string{}
		}
		metadata[violationReasonMetadataPrefix+v.Field] = v.Reason
	}

	if e.Reason != "" || e.Domain != "" || len(metadata) > 0 {
		ei := &errdetails.ErrorInfo{Reason: string(e.Reason), Domain: e.Domain, Metadata: metadata}
		if withInfo, err := st.WithDetails(ei); err == nil {
			st = withInfo
		}
	}

	if e.Code == codes.InvalidArgument && len(e.Violations) > 0 {
		br := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
		}
		for _, v := range e.Violations {
			desc := v.Description
			if desc == "" {
				desc = v.Reason
			}
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: desc,
			})
		}
		if withBR, err := st.WithDetails(br); err == nil {
			st = withBR
		}
	}

	return st.Err()
}

func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}

	out := ErrorResponse{Code: st.Code(), Message: st.Message()}
	reasons := map[string]string{}
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			out.Reason = Reason(x.GetReason())
			out.Domain = x.GetDomain()
			details := map[string]string{}
			for k, v := range x.GetMetadata() {
				if field, found := strings.CutPrefix(k, violationReasonMetadataPrefix); found {
					if field != "" {
						reasons[field] = v
					}
					continue
				}
				details[k] = v
			}
			out = out.WithDetails(details)
		case *errdetails.BadRequest:
			vs := make([]FieldViolation, 0, len(x.GetFieldViolations()))
			for _, fv := range x.GetFieldViolations() {
				vs = append(vs, FieldViolation{Field: fv.GetField(), Description: fv.GetDescription()})
			}
			out.Violations = vs
		}
	}

	// ErrorInfo and BadRequest may arrive in either order.
	for i := range out.Violations {
		out.Violations[i].Reason = reasons[out.Violations[i].Field]
	}
	return out
}

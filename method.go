/*
 * (C) Copyright 2024 Johan Michel PIQUET, France (https://johanpiquet.fr/).
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package httpRepresentation

//region Enum HttpMethod

type HttpMethod int

const (
	HttpMethodGET HttpMethod = iota
	HttpMethodPOST
	HttpMethodHEAD
	HttpMethodPUT
	HttpMethodDELETE
	HttpMethodCONNECT
	HttpMethodOPTIONS
	HttpMethodTRACE
	HttpMethodPATCH
)

func MethodNameToMethodCode(method string) HttpMethod {
	switch method {
	case "GET":
		return HttpMethodGET
	case "POST":
		return HttpMethodPOST
	case "HEAD":
		return HttpMethodHEAD
	case "DELETE":
		return HttpMethodDELETE
	case "PUT":
		return HttpMethodPUT
	case "CONNECT":
		return HttpMethodCONNECT
	case "OPTIONS":
		return HttpMethodOPTIONS
	case "TRACE":
		return HttpMethodTRACE
	case "PATCH":
		return HttpMethodPATCH
	default:
		return HttpMethodGET
	}
}

func (m HttpMethod) String() string {
	switch m {
	case HttpMethodPOST:
		return "POST"
	case HttpMethodHEAD:
		return "HEAD"
	case HttpMethodPUT:
		return "PUT"
	case HttpMethodDELETE:
		return "DELETE"
	case HttpMethodCONNECT:
		return "CONNECT"
	case HttpMethodOPTIONS:
		return "OPTIONS"
	case HttpMethodTRACE:
		return "TRACE"
	case HttpMethodPATCH:
		return "PATCH"
	default:
		return "GET"
	}
}

//endregion

//region Enum HttpVersion

type HttpVersion int

const (
	HttpVersion10 HttpVersion = iota
	HttpVersion11
	HttpVersion2
	HttpVersion3
)

func (m HttpVersion) String() string {
	switch m {
	case HttpVersion10:
		return "HTTP/1.0"
	case HttpVersion2:
		return "HTTP/2"
	case HttpVersion3:
		return "HTTP/3"
	default:
		return "HTTP/1.1"
	}
}

func VersionNameToVersionCode(version string) HttpVersion {
	switch version {
	case "HTTP/1.0":
		return HttpVersion10
	case "HTTP/2", "HTTP/2.0":
		return HttpVersion2
	case "HTTP/3", "HTTP/3.0":
		return HttpVersion3
	default:
		return HttpVersion11
	}
}

//endregion

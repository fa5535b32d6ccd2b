// Package shader holds the GLSL sources of the scene programs. All sources
// are null-terminated for gl.Strs.
package shader

import (
	"fmt"
	"strings"

	"github.com/paperboard/glscene/internal/light"
)

// vertex attribute locations shared by every program
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2

	// the screen quad has no normal
	AttribScreenPosition = 0
	AttribScreenTexCoord = 1
)

// uniform names
const (
	UniformProjectionView = "projectionView"
	UniformModel          = "model"
	UniformViewPos        = "viewPos"
	UniformLightColor     = "lightColor"
	UniformSkybox         = "skybox"
)

// Object is the textured Phong program: one directional light, one spot
// light and light.MaxPointLights point lights.
var Object = Source{Vertex: vertexObject, Fragment: fragmentObject}

// LightCube draws light cubes in a flat colour.
var LightCube = Source{Vertex: vertexLightCube, Fragment: fragmentLightCube}

// Skybox samples a cubemap by direction. Its projection-view matrix must not
// contain the camera translation.
var Skybox = Source{Vertex: vertexSkybox, Fragment: fragmentSkybox}

// ScreenVertex draws the offscreen colour buffer as a full-screen quad. The
// fragment stage depends on the post effect.
var ScreenVertex = vertexScreen

// Source is a vertex and fragment shader pair.
type Source struct {
	Vertex   string
	Fragment string
}

var vertexObject = `
#version 330 core

// input
uniform mat4 projectionView;
uniform mat4 model;

// input
layout (location = 0) in vec3 vertexPosition;
layout (location = 1) in vec3 vertexNormal;
layout (location = 2) in vec2 vertexTexCoord;

// output
out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;

void main() {
	fragPosition = vec3(model * vec4(vertexPosition, 1.0));
	fragNormal = mat3(transpose(inverse(model))) * vertexNormal;
	fragTexCoord = vertexTexCoord;
	gl_Position = projectionView * vec4(fragPosition, 1.0);
}
` + "\x00"

var fragmentObject = strings.Replace(`
#version 330 core

#define NR_POINT_LIGHTS %d

struct Material {
	sampler2D diffuse;
	sampler2D specular;
	float shininess;
};

struct DirLight {
	vec3 direction;

	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
};

struct PointLight {
	vec3 position;

	float constant;
	float linear;
	float quadratic;

	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
};

struct SpotLight {
	vec3 position;
	vec3 direction;
	float cutOff;
	float outerCutOff;

	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
};

// input
in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;

// input
uniform vec3 viewPos;
uniform Material material;
uniform DirLight dirLight;
uniform SpotLight spotLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];

// output
out vec4 outputColor;

vec3 calcDirLight(DirLight light, vec3 normal, vec3 viewDir, vec3 diffuseMap, vec3 specularMap) {
	vec3 lightDir = normalize(-light.direction);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);

	vec3 ambient = light.ambient * diffuseMap;
	vec3 diffuse = light.diffuse * diff * diffuseMap;
	vec3 specular = light.specular * spec * specularMap;
	return ambient + diffuse + specular;
}

vec3 calcPointLight(PointLight light, vec3 normal, vec3 viewDir, vec3 diffuseMap, vec3 specularMap) {
	vec3 lightDir = normalize(light.position - fragPosition);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);

	float distance = length(light.position - fragPosition);
	float attenuation = 1.0 / (light.constant + light.linear * distance + light.quadratic * (distance * distance));

	vec3 ambient = light.ambient * diffuseMap;
	vec3 diffuse = light.diffuse * diff * diffuseMap;
	vec3 specular = light.specular * spec * specularMap;
	return (ambient + diffuse + specular) * attenuation;
}

vec3 calcSpotLight(SpotLight light, vec3 normal, vec3 viewDir, vec3 diffuseMap, vec3 specularMap) {
	vec3 lightDir = normalize(light.position - fragPosition);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);

	// soft edge between the inner and outer cone
	float theta = dot(lightDir, normalize(-light.direction));
	float epsilon = light.cutOff - light.outerCutOff;
	float intensity = clamp((theta - light.outerCutOff) / epsilon, 0.0, 1.0);

	vec3 ambient = light.ambient * diffuseMap;
	vec3 diffuse = light.diffuse * diff * diffuseMap;
	vec3 specular = light.specular * spec * specularMap;
	return ambient + (diffuse + specular) * intensity;
}

void main() {
	vec3 normal = normalize(fragNormal);
	vec3 viewDir = normalize(viewPos - fragPosition);
	vec3 diffuseMap = vec3(texture(material.diffuse, fragTexCoord));
	vec3 specularMap = vec3(texture(material.specular, fragTexCoord));

	vec3 result = calcDirLight(dirLight, normal, viewDir, diffuseMap, specularMap);
	for (int i = 0; i < NR_POINT_LIGHTS; i++) {
		result += calcPointLight(pointLights[i], normal, viewDir, diffuseMap, specularMap);
	}
	result += calcSpotLight(spotLight, normal, viewDir, diffuseMap, specularMap);

	outputColor = vec4(result, 1.0);
}
`, "%d", fmt.Sprint(light.MaxPointLights), 1) + "\x00"

var vertexLightCube = `
#version 330 core

// input
uniform mat4 projectionView;
uniform mat4 model;

// input
layout (location = 0) in vec3 vertexPosition;

void main() {
	gl_Position = projectionView * model * vec4(vertexPosition, 1.0);
}
` + "\x00"

var fragmentLightCube = `
#version 330 core

// input
uniform vec3 lightColor;

// output
out vec4 outputColor;

void main() {
	outputColor = vec4(lightColor, 1.0);
}
` + "\x00"

var vertexSkybox = `
#version 330 core

// input
uniform mat4 projectionView;

// input
layout (location = 0) in vec3 vertexPosition;

// output
out vec3 fragTexCoord;

void main() {
	fragTexCoord = vertexPosition;
	vec4 position = projectionView * vec4(vertexPosition, 1.0);
	// z = w puts the skybox on the far plane
	gl_Position = position.xyww;
}
` + "\x00"

var fragmentSkybox = `
#version 330 core

// input
in vec3 fragTexCoord;

// input
uniform samplerCube skybox;

// output
out vec4 outputColor;

void main() {
	outputColor = texture(skybox, fragTexCoord);
}
` + "\x00"

var vertexScreen = `
#version 330 core

// input
layout (location = 0) in vec2 vertexPosition;
layout (location = 1) in vec2 vertexTexCoord;

// output
out vec2 fragTexCoord;

void main() {
	fragTexCoord = vertexTexCoord;
	gl_Position = vec4(vertexPosition, 0.0, 1.0);
}
` + "\x00"
